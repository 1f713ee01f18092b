package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	reservationRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/room"
	userRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/user"
	"github.com/asidorov/MRS-ReservationService/internal/service/conflicts"
	"github.com/asidorov/MRS-ReservationService/pkg/ptr"
)

// UseCase use case для изменения бронирования
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

// Execute выполняет use case изменения бронирования
// Изменять можно только активное бронирование, которое еще не началось
// (по исходному, а не новому моменту начала). При проверке конфликтов
// само изменяемое бронирование исключается из рассмотрения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, user=%d, room=%d, date=%s, window=%s-%s",
		req.ReservationID, req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бронирование: гейты его жизненного цикла проверяются
	// раньше справочников, чтобы ответ называл первопричину отказа
	current, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 4. Отмененное бронирование изменять нельзя
	if current.IsCancelled() {
		uc.logger.Warn("UpdateReservation: reservation id=%d is cancelled", req.ReservationID)
		return nil, ErrReservationCancelled
	}

	// 5. Проверяем исходный момент начала: начавшееся бронирование изменять нельзя
	if !current.IsUpcoming(now) {
		uc.logger.Warn("UpdateReservation: reservation id=%d has already started", req.ReservationID)
		return nil, ErrAlreadyStarted
	}

	// 6. Получаем пользователя
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("UpdateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 7. Получаем переговорную
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("UpdateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 8. Неактивную переговорную бронировать нельзя
	if !room.IsActive() {
		uc.logger.Warn("UpdateReservation: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomInactive
	}

	// 9. Время окончания строго позже времени начала
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("UpdateReservation: invalid time range %s-%s", req.StartTime, req.EndTime)
		return nil, err
	}

	// 10. Новый момент начала строго в будущем
	if err := validateStartInFuture(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("UpdateReservation: new start instant is not in the future (date=%s, start=%s)",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	var result *domain.Reservation

	// 11. Перечитываем запись под блокировкой, повторяем гейты и обновляем
	// в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// Отмененное бронирование изменять нельзя
		if current.IsCancelled() {
			uc.logger.Warn("UpdateReservation: reservation id=%d is cancelled", req.ReservationID)
			return ErrReservationCancelled
		}

		// Проверяем исходный момент начала: начавшееся бронирование изменять нельзя
		if !current.IsUpcoming(now) {
			uc.logger.Warn("UpdateReservation: reservation id=%d has already started", req.ReservationID)
			return ErrAlreadyStarted
		}

		// Проверяем конфликты, исключая само изменяемое бронирование
		if err := uc.checker.Check(txCtx, req.RoomID, req.Date, req.StartTime, req.EndTime, ptr.Ptr(current.ID)); err != nil {
			if errors.Is(err, conflicts.ErrTimeConflict) {
				uc.logger.Warn("UpdateReservation: conflict for room=%d date=%s window=%s-%s",
					req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
				return ErrTimeConflict
			}
			uc.logger.Error("UpdateReservation: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		updated := &domain.Reservation{
			ID:              current.ID,
			UserID:          req.UserID,
			RoomID:          req.RoomID,
			ReservationDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Reason:          req.Reason,
			Status:          current.Status,
		}

		saved, err := uc.reservationRepo.Update(txCtx, updated)
		if err != nil {
			// Exclusion constraint в БД дублирует проверку на случай гонки
			if errors.Is(err, reservationRepo.ErrTimeConflict) {
				return ErrTimeConflict
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

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
		UpdatedAt: result.UpdatedAt,
	}, nil
}
