package list_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/internal/service/conflicts"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// UseCase use case подбора свободных переговорных на заданное окно времени
type UseCase struct {
	roomRepo RoomRepository
	checker  ConflictChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, checker ConflictChecker, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute возвращает активные переговорные без пересечений с запрошенным окном
// Порядок переговорных в ответе совпадает с порядком справочника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailableRooms: date=%s, window=%s-%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем только активные переговорные
	status := domain.RoomStatusActive
	rooms, err := uc.roomRepo.List(ctx, &status)
	if err != nil {
		uc.logger.Error("ListAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Оставляем переговорные без пересечений с запрошенным окном
	available := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		err := uc.checker.Check(ctx, room.ID, req.Date, req.StartTime, req.EndTime, nil)
		if err != nil {
			if errors.Is(err, conflicts.ErrTimeConflict) {
				continue
			}
			uc.logger.Error("ListAvailableRooms: conflict check failed for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		available = append(available, RoomInfo{
			ID:       room.ID,
			Name:     room.Name,
			Type:     string(room.Type),
			Capacity: room.Capacity,
		})
	}

	uc.logger.Info("ListAvailableRooms: found %d available rooms", len(available))

	return &Response{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Rooms:     available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	if !validEndAfterStart(req.StartTime, req.EndTime) {
		return ErrInvalidTimeRange
	}

	return nil
}

func validEndAfterStart(start, end types.TimeString) bool {
	return end.IsAfter(start)
}
