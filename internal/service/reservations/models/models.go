package models

import (
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
// Имена переговорной и пользователя резолвятся на границе чтения,
// само бронирование хранит только идентификаторы
type ReservationResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	UserName        string `json:"userName"`
	RoomID          int64  `json:"roomId"`
	RoomName        string `json:"roomName"`
	ReservationDate string `json:"reservationDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "12:00"
	Reason          string `json:"reason"`
	Status          string `json:"status"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
// Имена подставляются из переданных справочных записей (могут быть nil)
func FromDomainReservation(r *domain.Reservation, room *domain.Room, user *domain.User) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		RoomID:          r.RoomID,
		ReservationDate: r.ReservationDate.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		Reason:          r.Reason,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if room != nil {
		resp.RoomName = room.Name
	}
	if user != nil {
		resp.UserName = user.Name
	}

	return resp
}
