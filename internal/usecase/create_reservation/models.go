package create_reservation

import (
	"time"

	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	RoomID    int64            // ID переговорной
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "12:00")
	Reason    string           // Цель бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	UserID    int64            // ID пользователя
	UserName  string           // Имя пользователя (из справочника)
	RoomID    int64            // ID переговорной
	RoomName  string           // Название переговорной (из справочника)
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Reason    string           // Цель бронирования
	Status    string           // Статус бронирования

	CreatedAt time.Time // Время создания
}
