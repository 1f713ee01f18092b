package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomInactive возвращается при попытке забронировать неактивную переговорную
	ErrRoomInactive = errors.New("create_reservation: room is inactive")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("create_reservation: end time must be after start time")

	// ErrStartNotInFuture возвращается, когда момент начала не строго в будущем
	ErrStartNotInFuture = errors.New("create_reservation: reservation must start in the future")

	// ErrTimeConflict возвращается при пересечении с другим активным бронированием
	ErrTimeConflict = errors.New("create_reservation: time conflict with another active reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
