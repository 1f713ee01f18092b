// Package conflicts проверка пересечений бронирований
//
// Интервалы бронирований полуоткрытые [start, end): бронирования "впритык"
// (конец одного равен началу другого) не конфликтуют, одинаковые интервалы
// конфликтуют всегда.
package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// Checker проверяет допустимость интервала бронирования
// Проверка только читает данные; запись остается за вызывающим кодом,
// который обязан выполнять проверку и запись в одной транзакции
type Checker struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewChecker создает новый экземпляр проверки конфликтов
func NewChecker(reservationRepo ReservationRepository, logger Logger) *Checker {
	return &Checker{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Check проверяет, свободен ли интервал [start, end) переговорной на дату
//
// excludeReservationID исключает бронирование из проверки — при изменении
// бронирование не должно конфликтовать с собственным прежним интервалом.
// Возвращает nil, если интервал свободен, и ErrTimeConflict при пересечении
// с другим активным бронированием.
//
// Порядок start/end здесь не проверяется: это отдельное бизнес-правило
// вызывающего кода, а не конфликт.
func (c *Checker) Check(
	ctx context.Context,
	roomID int64,
	date time.Time,
	start, end types.TimeString,
	excludeReservationID *int64,
) error {
	conflicting, err := c.reservationRepo.FindConflicting(ctx, roomID, date, start, end, excludeReservationID)
	if err != nil {
		c.logger.Error("Check: failed to find conflicting reservations for room=%d date=%s: %v",
			roomID, date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to find conflicting reservations: %v", ErrInternal, err)
	}

	// Репозиторий уже применил предикат пересечения и исключение по ID;
	// перепроверяем на доменном предикате, чтобы не зависеть от деталей SQL
	for _, r := range conflicting {
		if excludeReservationID != nil && r.ID == *excludeReservationID {
			continue
		}
		if r.IsActive() && domain.Overlaps(start, end, r.StartTime, r.EndTime) {
			c.logger.Warn("Check: conflict for room=%d date=%s window=%s-%s with reservation id=%d (%s-%s)",
				roomID, date.Format(domain.DateFormat), start, end, r.ID, r.StartTime, r.EndTime)
			return ErrTimeConflict
		}
	}

	return nil
}
