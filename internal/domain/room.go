package domain

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusActive   RoomStatus = "active"
	RoomStatusInactive RoomStatus = "inactive"
)

// RoomType represents the kind of a room
type RoomType string

const (
	RoomTypeClassroom   RoomType = "classroom"
	RoomTypeLaboratory  RoomType = "laboratory"
	RoomTypeAuditorium  RoomType = "auditorium"
	RoomTypeMeetingRoom RoomType = "meeting_room"
)

// Room represents a bookable room from the directory
type Room struct {
	ID       int64
	Name     string
	Type     RoomType
	Capacity int
	Status   RoomStatus
}

// IsActive returns true if the room accepts reservations
func (r *Room) IsActive() bool {
	return r.Status == RoomStatusActive
}

// ValidRoomStatuses список допустимых статусов переговорных
var ValidRoomStatuses = []RoomStatus{
	RoomStatusActive,
	RoomStatusInactive,
}

// ValidRoomTypes список допустимых типов переговорных
var ValidRoomTypes = []RoomType{
	RoomTypeClassroom,
	RoomTypeLaboratory,
	RoomTypeAuditorium,
	RoomTypeMeetingRoom,
}
