package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrReservationCancelled возвращается при попытке изменить отмененное бронирование
	ErrReservationCancelled = errors.New("update_reservation: reservation is cancelled")

	// ErrAlreadyStarted возвращается, когда бронирование уже началось или прошло
	ErrAlreadyStarted = errors.New("update_reservation: reservation has already started")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("update_reservation: user not found")

	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("update_reservation: room not found")

	// ErrRoomInactive возвращается при попытке перенести бронирование в неактивную переговорную
	ErrRoomInactive = errors.New("update_reservation: room is inactive")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("update_reservation: end time must be after start time")

	// ErrStartNotInFuture возвращается, когда новый момент начала не строго в будущем
	ErrStartNotInFuture = errors.New("update_reservation: reservation must start in the future")

	// ErrTimeConflict возвращается при пересечении с другим активным бронированием
	ErrTimeConflict = errors.New("update_reservation: time conflict with another active reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
