package list_reservations

import (
	"net/http"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Retrieved %d reservations", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
