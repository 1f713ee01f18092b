package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrEmailTaken возвращается при нарушении уникальности e-mail
	ErrEmailTaken = errors.New("user.repository: email already taken")

	// ErrUserHasReservations возвращается при попытке удалить пользователя,
	// на которого ссылаются бронирования
	ErrUserHasReservations = errors.New("user.repository: user has reservations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
