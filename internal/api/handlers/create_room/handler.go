package create_room

import (
	"errors"
	"net/http"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNameTaken):
			h.logger.Warn("POST /rooms - Room name taken: name=%q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
