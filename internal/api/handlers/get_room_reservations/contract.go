package get_room_reservations

import (
	"context"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetRoomReservations(ctx context.Context, roomID int64, date time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
