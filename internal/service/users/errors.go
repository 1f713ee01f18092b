package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrEmailTaken возвращается, когда e-mail уже занят
	ErrEmailTaken = errors.New("users: email already taken")

	// ErrUserHasReservations возвращается при удалении пользователя с бронированиями
	ErrUserHasReservations = errors.New("users: user has reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
