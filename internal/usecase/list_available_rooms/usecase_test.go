package list_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/internal/service/conflicts"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(ctx context.Context, status *domain.RoomStatus) ([]*domain.Room, error) {
	var result []*domain.Room
	for _, room := range f.rooms {
		if status != nil && room.Status != *status {
			continue
		}
		result = append(result, room)
	}
	return result, nil
}

type fakeChecker struct {
	reservations []*domain.Reservation
}

func (f *fakeChecker) Check(
	ctx context.Context,
	roomID int64,
	date time.Time,
	start, end types.TimeString,
	excludeReservationID *int64,
) error {
	for _, r := range f.reservations {
		if r.RoomID != roomID || !r.ReservationDate.Equal(date) || !r.IsActive() {
			continue
		}
		if domain.Overlaps(start, end, r.StartTime, r.EndTime) {
			return conflicts.ErrTimeConflict
		}
	}
	return nil
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func testRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 1, Name: "Аудитория 101", Type: domain.RoomTypeClassroom, Capacity: 30, Status: domain.RoomStatusActive},
		{ID: 2, Name: "Лаборатория 2", Type: domain.RoomTypeLaboratory, Capacity: 15, Status: domain.RoomStatusActive},
		{ID: 3, Name: "Актовый зал", Type: domain.RoomTypeAuditorium, Capacity: 200, Status: domain.RoomStatusInactive},
	}
}

func activeReservation(roomID int64, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:              1,
		RoomID:          roomID,
		ReservationDate: testDate(),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		Status:          domain.StatusActive,
	}
}

func validRequest() *Request {
	return &Request{
		Date:      testDate(),
		StartTime: "10:00",
		EndTime:   "12:00",
	}
}

func TestExecute_AllActiveRoomsFree(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeChecker{}, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Неактивный зал отфильтрован, порядок справочника сохранен
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, int64(1), resp.Rooms[0].ID)
	assert.Equal(t, int64(2), resp.Rooms[1].ID)
}

func TestExecute_ConflictingRoomFiltered(t *testing.T) {
	checker := &fakeChecker{reservations: []*domain.Reservation{
		activeReservation(1, "11:00", "13:00"),
	}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, checker, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)
}

func TestExecute_TouchingReservationDoesNotFilter(t *testing.T) {
	// Бронирование встык к запрошенному окну не мешает
	checker := &fakeChecker{reservations: []*domain.Reservation{
		activeReservation(1, "12:00", "14:00"),
	}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, checker, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)
}

func TestExecute_CancelledReservationDoesNotFilter(t *testing.T) {
	cancelled := activeReservation(1, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelled

	checker := &fakeChecker{reservations: []*domain.Reservation{cancelled}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, checker, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)
}

func TestExecute_AllRoomsBusy(t *testing.T) {
	checker := &fakeChecker{reservations: []*domain.Reservation{
		activeReservation(1, "09:00", "13:00"),
		activeReservation(2, "10:00", "11:00"),
	}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, checker, &noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeChecker{}, &noopLogger{})

	req := validRequest()
	req.StartTime = "12:00"
	req.EndTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeChecker{}, &noopLogger{})

	req := validRequest()
	req.Date = time.Time{}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
