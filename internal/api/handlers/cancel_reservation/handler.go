package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgAlreadyCancelled     = "бронирование уже отменено"
	msgAlreadyStarted       = "бронирование уже началось и не может быть отменено"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Отменяем бронирование
	err = h.service.Cancel(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Already cancelled: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, reservations.ErrAlreadyStarted):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Already started: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgAlreadyStarted)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
