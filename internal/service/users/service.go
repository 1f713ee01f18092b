package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	userRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/user"
	"github.com/asidorov/MRS-ReservationService/internal/service/users/models"
)

// Service сервис справочника пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает нового пользователя
func (s *Service) Create(ctx context.Context, req *models.UserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user email=%q", req.Email)

	if err := s.validate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, req.ToDomainUser())
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%q already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// List получает список всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching all users")

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// Update обновляет данные пользователя
func (s *Service) Update(ctx context.Context, id int64, req *models.UserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	if err := s.validate(req); err != nil {
		s.logger.Warn("Update: validation failed for user id=%d: %v", id, err)
		return nil, err
	}

	user := req.ToDomainUser()
	user.ID = id

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrEmailTaken):
			s.logger.Warn("Update: email=%q already taken", req.Email)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("Update: repository error for user id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated user id=%d", id)
	return models.FromDomainUser(updated), nil
}

// Delete удаляет пользователя из справочника
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		case errors.Is(err, userRepo.ErrUserHasReservations):
			s.logger.Warn("Delete: user id=%d has reservations", id)
			return ErrUserHasReservations
		default:
			s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted user id=%d", id)
	return nil
}

func (s *Service) validate(req *models.UserRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	return nil
}
