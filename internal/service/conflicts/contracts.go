package conflicts

import (
	"context"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
// FindConflicting возвращает активные бронирования переговорной на дату,
// пересекающиеся с интервалом [start, end), исключая excludeID (если задан)
type ReservationRepository interface {
	FindConflicting(ctx context.Context, roomID int64, date time.Time, start, end types.TimeString, excludeID *int64) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
