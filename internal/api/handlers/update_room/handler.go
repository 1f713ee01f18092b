package update_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "некорректный ID переговорной"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "переговорная не найдена"
	msgNameTaken          = "переговорная с таким названием уже существует"
	msgInvalidInput       = "некорректные данные переговорной"
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

// Handle PUT /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrRoomNameTaken):
			h.logger.Warn("PUT /rooms/{id} - Room name taken: name=%q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{id} - Failed to update room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id} - Room updated successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
