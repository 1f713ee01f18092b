package conflicts

import "errors"

var (
	// ErrTimeConflict возвращается, когда интервал пересекается с другим
	// активным бронированием той же переговорной на ту же дату
	ErrTimeConflict = errors.New("conflicts: another active reservation already occupies this room in this window")

	// ErrInternal возвращается при внутренних ошибках проверки
	ErrInternal = errors.New("conflicts: internal error")
)
