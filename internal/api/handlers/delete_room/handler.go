package delete_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms"
)

const (
	msgInvalidRoomID   = "некорректный ID переговорной"
	msgNotFound        = "переговорная не найдена"
	msgHasReservations = "переговорная не может быть удалена, пока у нее есть бронирования"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	err = h.service.Delete(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrRoomHasReservations):
			h.logger.Warn("DELETE /rooms/{id} - Room has reservations: room_id=%d", roomID)
			handlers.RespondConflict(w, msgHasReservations)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
