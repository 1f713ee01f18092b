package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	roomRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/room"
	"github.com/asidorov/MRS-ReservationService/internal/service/rooms/models"
)

// Service сервис справочника переговорных
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса переговорных
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новую переговорную
func (s *Service) Create(ctx context.Context, req *models.RoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q", req.Name)

	room, err := s.toDomain(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNameTaken) {
			s.logger.Warn("Create: room name=%q already taken", req.Name)
			return nil, ErrRoomNameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// List получает список переговорных с опциональным фильтром по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, status=%v", status)

	var domainStatus *domain.RoomStatus
	if status != nil {
		parsed, err := models.ToDomainRoomStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%q", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &parsed
	}

	rooms, err := s.roomRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает переговорную по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Update обновляет данные переговорной
func (s *Service) Update(ctx context.Context, id int64, req *models.RoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", id)

	room, err := s.toDomain(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}
	room.ID = id

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomNameTaken):
			s.logger.Warn("Update: room name=%q already taken", req.Name)
			return nil, ErrRoomNameTaken
		default:
			s.logger.Error("Update: repository error for room id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет переговорную из справочника
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomHasReservations):
			s.logger.Warn("Delete: room id=%d has reservations", id)
			return ErrRoomHasReservations
		default:
			s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// toDomain валидирует запрос и конвертирует его в domain модель
func (s *Service) toDomain(req *models.RoomRequest) (*domain.Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	room, err := req.ToDomainRoom()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return room, nil
}
