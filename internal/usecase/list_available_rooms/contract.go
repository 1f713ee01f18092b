package list_available_rooms

import (
	"context"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// RoomRepository интерфейс справочника переговорных
type RoomRepository interface {
	List(ctx context.Context, status *domain.RoomStatus) ([]*domain.Room, error)
}

// ConflictChecker интерфейс проверки пересечений бронирований
type ConflictChecker interface {
	Check(ctx context.Context, roomID int64, date time.Time, start, end types.TimeString, excludeReservationID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
