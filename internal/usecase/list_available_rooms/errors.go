package list_available_rooms

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("list_available_rooms: end time must be after start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_available_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_available_rooms: internal error")
)
