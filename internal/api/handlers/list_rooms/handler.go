package list_rooms

import (
	"errors"
	"net/http"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms"
)

const (
	msgInvalidStatus = "некорректный статус переговорной"
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

// Handle GET /api/v1/rooms?status=active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Retrieved %d rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
