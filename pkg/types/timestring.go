package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени "HH:MM" (24 часа, без секунд)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время в формате "HH:MM" (например, "10:00")
// Используется для хранения времени без привязки к дате и часовому поясу
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывая дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Нормализуем ("9:05" -> "09:05")
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// Clock возвращает часы и минуты
func (ts TimeString) Clock() (hour, minute int) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}

// Minutes возвращает количество минут с начала суток
func (ts TimeString) Minutes() int {
	h, m := ts.Clock()
	return h*60 + m
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Minutes() > other.Minutes()
}

// AddMinutes возвращает время, сдвинутое на указанное число минут вперед
// Возвращает ошибку при выходе за пределы суток
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := ts.Minutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(ts), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Scan реализует sql.Scanner
// Postgres возвращает колонки типа TIME как time.Time или строку "HH:MM:SS"
func (ts *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, value)
	}
}

func (ts *TimeString) scanString(s string) error {
	// "10:00:00" -> "10:00"
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}
