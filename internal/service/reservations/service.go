package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	reservationRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/reservation"
	"github.com/asidorov/MRS-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения и отмены бронирований
// Создание и изменение вынесены в отдельные use cases с транзакционной
// проверкой конфликтов
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	userRepo        UserRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Читается вне транзакции: в транзакции репозиторий берет FOR UPDATE,
// что несовместимо с read-only режимом
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	responses, err := s.toResponses(ctx, []*domain.Reservation{reservation})
	if err != nil {
		return nil, err
	}

	return &responses[0], nil
}

// List получает все бронирования
// Выборка и резолв имен выполняются в одной read-only транзакции,
// чтобы список и справочники читались из одного снимка данных
func (s *Service) List(ctx context.Context) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching all reservations")

	var responses []models.ReservationResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		reservations, err := s.reservationRepo.List(txCtx)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}

		responses, err = s.toResponses(txCtx, reservations)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: successfully fetched %d reservations", len(responses))
	return &models.ReservationListResponse{Reservations: responses}, nil
}

// GetUserReservations получает бронирования пользователя
func (s *Service) GetUserReservations(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d", userID)

	var responses []models.ReservationResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		reservations, err := s.reservationRepo.GetByUserID(txCtx, userID)
		if err != nil {
			s.logger.Error("GetUserReservations: repository error for user=%d: %v", userID, err)
			return fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
		}

		responses, err = s.toResponses(txCtx, reservations)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(responses), userID)
	return &models.ReservationListResponse{Reservations: responses}, nil
}

// GetRoomReservations получает бронирования переговорной на указанную дату
func (s *Service) GetRoomReservations(ctx context.Context, roomID int64, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRoomReservations: fetching reservations for room=%d, date=%s",
		roomID, date.Format(domain.DateFormat))

	var responses []models.ReservationResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		reservations, err := s.reservationRepo.GetByRoomAndDate(txCtx, roomID, date)
		if err != nil {
			s.logger.Error("GetRoomReservations: repository error for room=%d: %v", roomID, err)
			return fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
		}

		responses, err = s.toResponses(txCtx, reservations)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetRoomReservations: successfully fetched %d reservations for room=%d", len(responses), roomID)
	return &models.ReservationListResponse{Reservations: responses}, nil
}

// Cancel отменяет бронирование
// Отмена разрешена только пока бронирование не началось; отмененное
// бронирование — терминальное состояние, повторная отмена невозможна.
// Гейты и смена статуса выполняются в одной транзакции: GetByID берет
// FOR UPDATE, поэтому конкурентная отмена увидит уже отмененную запись
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if reservation.IsCancelled() {
			s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
			return ErrAlreadyCancelled
		}

		now := s.timeProvider.Now()
		if !reservation.IsUpcoming(now) {
			s.logger.Warn("Cancel: reservation id=%d has already started (starts_at=%s, now=%s)",
				id, reservation.StartsAt().Format(time.RFC3339), now.Format(time.RFC3339))
			return ErrAlreadyStarted
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
		return nil
	})
}

// toResponses конвертирует бронирования в DTO, резолвя имена переговорных
// и пользователей из справочников (каждый ID запрашивается один раз)
func (s *Service) toResponses(ctx context.Context, reservations []*domain.Reservation) ([]models.ReservationResponse, error) {
	rooms := make(map[int64]*domain.Room)
	users := make(map[int64]*domain.User)

	responses := make([]models.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		room, ok := rooms[r.RoomID]
		if !ok {
			var err error
			room, err = s.roomRepo.GetByID(ctx, r.RoomID)
			if err != nil {
				s.logger.Error("toResponses: failed to resolve room id=%d: %v", r.RoomID, err)
				return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
			}
			rooms[r.RoomID] = room
		}

		user, ok := users[r.UserID]
		if !ok {
			var err error
			user, err = s.userRepo.GetByID(ctx, r.UserID)
			if err != nil {
				s.logger.Error("toResponses: failed to resolve user id=%d: %v", r.UserID, err)
				return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
			}
			users[r.UserID] = user
		}

		responses = append(responses, *models.FromDomainReservation(r, room, user))
	}

	return responses, nil
}
