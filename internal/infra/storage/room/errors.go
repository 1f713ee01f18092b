package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomNameTaken возвращается при нарушении уникальности имени
	ErrRoomNameTaken = errors.New("room.repository: room name already taken")

	// ErrRoomHasReservations возвращается при попытке удалить переговорную,
	// на которую ссылаются бронирования
	ErrRoomHasReservations = errors.New("room.repository: room has reservations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
