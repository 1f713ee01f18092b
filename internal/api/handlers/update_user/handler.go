package update_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/users"
	"github.com/asidorov/MRS-ReservationService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "пользователь не найден"
	msgEmailTaken         = "пользователь с таким e-mail уже существует"
	msgInvalidInput       = "некорректные данные пользователя"
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

// Handle PUT /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("PUT /users/{id} - Email taken: email=%q", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /users/{id} - Failed to update user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id} - User updated successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
