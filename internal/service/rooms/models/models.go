package models

import (
	"errors"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе переговорной
	ErrInvalidStatus = errors.New("invalid room status")

	// ErrInvalidType возвращается при некорректном типе переговорной
	ErrInvalidType = errors.New("invalid room type")
)

// RoomRequest запрос на создание или изменение переговорной
type RoomRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// RoomResponse ответ с данными переговорной
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// RoomListResponse ответ со списком переговорных
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToDomainRoom конвертирует запрос в domain модель с валидацией enum-полей
func (r *RoomRequest) ToDomainRoom() (*domain.Room, error) {
	roomType, err := ToDomainRoomType(r.Type)
	if err != nil {
		return nil, err
	}

	status, err := ToDomainRoomStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return &domain.Room{
		Name:     r.Name,
		Type:     roomType,
		Capacity: r.Capacity,
		Status:   status,
	}, nil
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		ID:       room.ID,
		Name:     room.Name,
		Type:     string(room.Type),
		Capacity: room.Capacity,
		Status:   string(room.Status),
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}

// ToDomainRoomStatus конвертирует строку в domain.RoomStatus с валидацией
func ToDomainRoomStatus(status string) (domain.RoomStatus, error) {
	s := domain.RoomStatus(status)
	for _, valid := range domain.ValidRoomStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// ToDomainRoomType конвертирует строку в domain.RoomType с валидацией
func ToDomainRoomType(roomType string) (domain.RoomType, error) {
	t := domain.RoomType(roomType)
	for _, valid := range domain.ValidRoomTypes {
		if t == valid {
			return t, nil
		}
	}
	return "", ErrInvalidType
}
