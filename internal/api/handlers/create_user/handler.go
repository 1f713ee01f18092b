package create_user

import (
	"errors"
	"net/http"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/service/users"
	"github.com/asidorov/MRS-ReservationService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken: email=%q", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /users - Failed to create user: email=%q, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
