package update_reservation

import (
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	updateReservation "github.com/asidorov/MRS-ReservationService/internal/usecase/update_reservation"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model
// Клиент передает полное новое состояние бронирования
type UpdateReservationRequest struct {
	UserID          int64  `json:"userId"`
	RoomID          int64  `json:"roomId"`
	ReservationDate string `json:"reservationDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "12:00"
	Reason          string `json:"reason"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	UserName        string  `json:"userName"`
	RoomID          int64   `json:"roomId"`
	RoomName        string  `json:"roomName"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       *string `json:"updatedAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID int64) (*updateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		ReservationID: reservationID,
		UserID:        r.UserID,
		RoomID:        r.RoomID,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		Reason:        r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	result := &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		UserName:        resp.UserName,
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		ReservationDate: resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Reason:          resp.Reason,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.UpdatedAt != nil {
		updatedAt := resp.UpdatedAt.Format(time.RFC3339)
		result.UpdatedAt = &updatedAt
	}

	return result
}
