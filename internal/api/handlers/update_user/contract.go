package update_user

import (
	"context"

	"github.com/asidorov/MRS-ReservationService/internal/service/users/models"
)

type UserService interface {
	Update(ctx context.Context, id int64, req *models.UserRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
