package domain

import (
	"time"

	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a time-bounded room reservation
// Room and user are referenced by id only; the directory owns the records
type Reservation struct {
	ID              int64
	UserID          int64
	RoomID          int64
	ReservationDate time.Time // Только дата, время обнулено
	StartTime       types.TimeString
	EndTime         types.TimeString
	Reason          string
	Status          ReservationStatus

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// IsActive returns true if the reservation has not been cancelled
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// StartsAt returns the instant the reservation begins (date + start time)
func (r *Reservation) StartsAt() time.Time {
	h, m := r.StartTime.Clock()
	return time.Date(
		r.ReservationDate.Year(), r.ReservationDate.Month(), r.ReservationDate.Day(),
		h, m, 0, 0, r.ReservationDate.Location(),
	)
}

// IsUpcoming returns true if the reservation starts strictly after now
// Редактирование и отмена разрешены только для предстоящих бронирований
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.StartsAt().After(now)
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and [bStart,bEnd)
// intersect. Touching endpoints (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}
