package list_available_rooms

import (
	"time"

	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// Request модель запроса на подбор свободных переговорных
type Request struct {
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала искомого окна
	EndTime   types.TimeString // Время окончания искомого окна
}

// RoomInfo информация о свободной переговорной
type RoomInfo struct {
	ID       int64  // ID переговорной
	Name     string // Название
	Type     string // Тип (аудитория, лаборатория и т.д.)
	Capacity int    // Вместимость
}

// Response модель ответа со списком свободных переговорных
type Response struct {
	Date      time.Time        // Запрошенная дата
	StartTime types.TimeString // Запрошенное время начала
	EndTime   types.TimeString // Запрошенное время окончания
	Rooms     []RoomInfo       // Свободные переговорные
}
