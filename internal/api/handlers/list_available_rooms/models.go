package list_available_rooms

import (
	"github.com/asidorov/MRS-ReservationService/internal/domain"
	listAvailableRooms "github.com/asidorov/MRS-ReservationService/internal/usecase/list_available_rooms"
)

// AvailableRoomResponse информация о свободной переговорной
type AvailableRoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	Date      string                  `json:"date"`
	StartTime string                  `json:"startTime"`
	EndTime   string                  `json:"endTime"`
	Rooms     []AvailableRoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, AvailableRoomResponse{
			ID:       room.ID,
			Name:     room.Name,
			Type:     room.Type,
			Capacity: room.Capacity,
		})
	}

	return &AvailableRoomsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Rooms:     rooms,
	}
}
