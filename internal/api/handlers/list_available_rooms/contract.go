package list_available_rooms

import (
	"context"

	listAvailableRooms "github.com/asidorov/MRS-ReservationService/internal/usecase/list_available_rooms"
)

type ListAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *listAvailableRooms.Request) (*listAvailableRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
