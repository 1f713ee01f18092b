package update_reservation

import (
	"time"

	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования
// Все поля обязательны: клиент передает полное новое состояние
type Request struct {
	ReservationID int64            // ID изменяемого бронирования
	UserID        int64            // ID пользователя
	RoomID        int64            // ID переговорной
	Date          time.Time        // Новая дата бронирования
	StartTime     types.TimeString // Новое время начала
	EndTime       types.TimeString // Новое время окончания
	Reason        string           // Цель бронирования
}

// Response модель ответа с измененным бронированием
type Response struct {
	ID        int64            // ID бронирования
	UserID    int64            // ID пользователя
	UserName  string           // Имя пользователя (из справочника)
	RoomID    int64            // ID переговорной
	RoomName  string           // Название переговорной (из справочника)
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Reason    string           // Цель бронирования
	Status    string           // Статус бронирования

	CreatedAt time.Time  // Время создания
	UpdatedAt *time.Time // Время последнего изменения
}
