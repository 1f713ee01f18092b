package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("reservations: reservation is already cancelled")

	// ErrAlreadyStarted возвращается, когда бронирование уже началось или прошло —
	// отмена разрешена только строго до времени начала
	ErrAlreadyStarted = errors.New("reservations: reservation has already started or passed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
