package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrRoomNameTaken возвращается, когда имя переговорной уже занято
	ErrRoomNameTaken = errors.New("rooms: room name already taken")

	// ErrRoomHasReservations возвращается при удалении переговорной с бронированиями
	ErrRoomHasReservations = errors.New("rooms: room has reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
