package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	reservationRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/room"
	userRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/user"
	"github.com/asidorov/MRS-ReservationService/internal/service/conflicts"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type memStore struct {
	reservations []*domain.Reservation
}

type fakeReservationRepo struct {
	store *memStore
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	for _, r := range f.store.reservations {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) Update(ctx context.Context, updated *domain.Reservation) (*domain.Reservation, error) {
	for i, r := range f.store.reservations {
		if r.ID == updated.ID {
			saved := *updated
			saved.CreatedAt = r.CreatedAt
			updatedAt := time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)
			saved.UpdatedAt = &updatedAt
			f.store.reservations[i] = &saved
			return &saved, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

type fakeChecker struct {
	store *memStore
}

func (f *fakeChecker) Check(
	ctx context.Context,
	roomID int64,
	date time.Time,
	start, end types.TimeString,
	excludeReservationID *int64,
) error {
	for _, r := range f.store.reservations {
		if r.RoomID != roomID || !r.ReservationDate.Equal(date) || !r.IsActive() {
			continue
		}
		if excludeReservationID != nil && r.ID == *excludeReservationID {
			continue
		}
		if domain.Overlaps(start, end, r.StartTime, r.EndTime) {
			return conflicts.ErrTimeConflict
		}
	}
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func storedReservation(id int64, start, end string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		UserID:          1,
		RoomID:          1,
		ReservationDate: testDate(),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		Reason:          "Семинар",
		Status:          status,
		CreatedAt:       time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC),
	}
}

type fixture struct {
	uc    *UseCase
	store *memStore
}

func newFixture(reservations ...*domain.Reservation) *fixture {
	store := &memStore{reservations: reservations}
	uc := NewUseCase(
		&fakeReservationRepo{store: store},
		&fakeRoomRepo{rooms: map[int64]*domain.Room{
			1: {ID: 1, Name: "Аудитория 101", Type: domain.RoomTypeClassroom, Capacity: 30, Status: domain.RoomStatusActive},
			2: {ID: 2, Name: "Лаборатория 2", Type: domain.RoomTypeLaboratory, Capacity: 15, Status: domain.RoomStatusInactive},
		}},
		&fakeUserRepo{users: map[int64]*domain.User{
			1: {ID: 1, Name: "Иван Петров", Email: "ivan@example.com"},
		}},
		&fakeChecker{store: store},
		&fakeTxManager{},
		&noopLogger{},
	)
	// Фиксируем текущее время: 14 октября 2025, 09:00
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)}
	return &fixture{uc: uc, store: store}
}

func validRequest(reservationID int64) *Request {
	return &Request{
		ReservationID: reservationID,
		UserID:        1,
		RoomID:        1,
		Date:          testDate(),
		StartTime:     "14:00",
		EndTime:       "16:00",
		Reason:        "Семинар (перенос)",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusActive))

	resp, err := f.uc.Execute(context.Background(), validRequest(1))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.EndTime)
	assert.Equal(t, "active", resp.Status)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest(99))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NotFoundReportedBeforeMissingUser(t *testing.T) {
	f := newFixture()

	// И бронирования, и пользователя нет: ответ называет бронирование
	req := validRequest(99)
	req.UserID = 42

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_CancelledReportedBeforeInactiveRoom(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusCancelled))

	// Перенос отмененного бронирования в неактивную переговорную:
	// гейт жизненного цикла срабатывает раньше проверки переговорной
	req := validRequest(1)
	req.RoomID = 2

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationCancelled)
}

func TestExecute_CancelledReservation(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusCancelled))

	_, err := f.uc.Execute(context.Background(), validRequest(1))
	assert.ErrorIs(t, err, ErrReservationCancelled)
}

func TestExecute_AlreadyStarted(t *testing.T) {
	// Бронирование начинается 14 октября в 08:00, сейчас 09:00
	started := storedReservation(1, "08:00", "17:00", domain.StatusActive)
	started.ReservationDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	f := newFixture(started)

	// Пытаемся перенести на будущее окно: гейт смотрит на исходный момент начала
	_, err := f.uc.Execute(context.Background(), validRequest(1))
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusActive))

	// Новый интервал пересекается со старым интервалом самого бронирования
	req := validRequest(1)
	req.StartTime = "11:00"
	req.EndTime = "13:00"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
}

func TestExecute_ConflictWithOtherReservation(t *testing.T) {
	f := newFixture(
		storedReservation(1, "10:00", "12:00", domain.StatusActive),
		storedReservation(2, "14:00", "16:00", domain.StatusActive),
	)

	// Переносим первое бронирование в окно второго
	req := validRequest(1)
	req.StartTime = "15:00"
	req.EndTime = "17:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_RoomInactive(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusActive))

	req := validRequest(1)
	req.RoomID = 2

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusActive))

	req := validRequest(1)
	req.StartTime = "16:00"
	req.EndTime = "16:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_NewStartNotInFuture(t *testing.T) {
	f := newFixture(storedReservation(1, "10:00", "12:00", domain.StatusActive))

	req := validRequest(1)
	req.Date = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	req.StartTime = "08:00"
	req.EndTime = "09:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartNotInFuture)
}
