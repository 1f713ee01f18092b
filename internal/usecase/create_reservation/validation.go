package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return nil
}

// validateTimeRange проверяет, что интервал не вырожден:
// время окончания строго позже времени начала
func validateTimeRange(start, end types.TimeString) error {
	if !end.IsAfter(start) {
		return ErrInvalidTimeRange
	}
	return nil
}

// validateStartInFuture проверяет, что момент начала строго в будущем
// Бронирования на прошедший или текущий момент недопустимы
func validateStartInFuture(date time.Time, start types.TimeString, now time.Time) error {
	if !startInstant(date, start).After(now) {
		return ErrStartNotInFuture
	}
	return nil
}

// startInstant возвращает момент начала бронирования (дата + время начала)
func startInstant(date time.Time, start types.TimeString) time.Time {
	h, m := start.Clock()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}
