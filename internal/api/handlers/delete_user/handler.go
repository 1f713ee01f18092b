package delete_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/users"
)

const (
	msgInvalidUserID   = "некорректный ID пользователя"
	msgNotFound        = "пользователь не найден"
	msgHasReservations = "пользователь не может быть удален, пока у него есть бронирования"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	err = h.service.Delete(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrUserHasReservations):
			h.logger.Warn("DELETE /users/{id} - User has reservations: user_id=%d", userID)
			handlers.RespondConflict(w, msgHasReservations)

		default:
			h.logger.Error("DELETE /users/{id} - Failed to delete user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
