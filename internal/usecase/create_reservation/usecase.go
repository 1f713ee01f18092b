package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	reservationRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/room"
	userRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/user"
	"github.com/asidorov/MRS-ReservationService/internal/service/conflicts"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	userRepo        UserRepository
	checker         ConflictChecker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		checker:         checker,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции,
// чтобы два конкурентных запроса не создали пересекающиеся бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, date=%s, window=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем пользователя
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем переговорную
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 5. Неактивную переговорную бронировать нельзя
	if !room.IsActive() {
		uc.logger.Warn("CreateReservation: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomInactive
	}

	// 6. Время окончания строго позже времени начала
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: invalid time range %s-%s", req.StartTime, req.EndTime)
		return nil, err
	}

	// 7. Момент начала строго в будущем
	if err := validateStartInFuture(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: start instant is not in the future (date=%s, start=%s)",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	var result *domain.Reservation

	// 8. Проверяем конфликты и создаем запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checker.Check(txCtx, req.RoomID, req.Date, req.StartTime, req.EndTime, nil); err != nil {
			if errors.Is(err, conflicts.ErrTimeConflict) {
				uc.logger.Warn("CreateReservation: conflict for room=%d date=%s window=%s-%s",
					req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateReservation: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		reservation := &domain.Reservation{
			UserID:          req.UserID,
			RoomID:          req.RoomID,
			ReservationDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Reason:          req.Reason,
			Status:          domain.StatusActive,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Exclusion constraint в БД дублирует проверку на случай гонки
			if errors.Is(err, reservationRepo.ErrTimeConflict) {
				return ErrTimeConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		UserName:  user.Name,
		RoomID:    result.RoomID,
		RoomName:  room.Name,
		Date:      result.ReservationDate,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Reason:    result.Reason,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
