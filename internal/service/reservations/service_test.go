package reservations

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

// txCtxKey маркер транзакции, который fakeTxManager кладет в context
type txCtxKey struct{}

func inTx(ctx context.Context) bool {
	return ctx.Value(txCtxKey{}) != nil
}

type fakeTxManager struct {
	doCalls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.doCalls++
	return fn(context.WithValue(ctx, txCtxKey{}, struct{}{}))
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation

	getInTx    bool
	updateInTx bool
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	f.getInTx = inTx(ctx)

	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) List(ctx context.Context) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID == roomID && r.ReservationDate.Equal(date) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	f.updateInTx = inTx(ctx)

	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
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

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func storedReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		UserID:          1,
		RoomID:          1,
		ReservationDate: testDate(),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("12:00"),
		Reason:          "Лекция",
		Status:          status,
		CreatedAt:       time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC),
	}
}

func newService(reservations ...*domain.Reservation) *Service {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}

	svc := NewService(
		repo,
		&fakeRoomRepo{rooms: map[int64]*domain.Room{
			1: {ID: 1, Name: "Аудитория 101", Type: domain.RoomTypeClassroom, Capacity: 30, Status: domain.RoomStatusActive},
		}},
		&fakeUserRepo{users: map[int64]*domain.User{
			1: {ID: 1, Name: "Иван Петров", Email: "ivan@example.com"},
		}},
		&fakeTxManager{},
		&noopLogger{},
	)
	// Фиксируем текущее время: 14 октября 2025, 09:00
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetByID_Success(t *testing.T) {
	svc := newService(storedReservation(1, domain.StatusActive))

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Иван Петров", resp.UserName)
	assert.Equal(t, "Аудитория 101", resp.RoomName)
	assert.Equal(t, "2025-10-15", resp.ReservationDate)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList(t *testing.T) {
	svc := newService(
		storedReservation(1, domain.StatusActive),
		storedReservation(2, domain.StatusCancelled),
	)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}

func TestGetUserReservations(t *testing.T) {
	other := storedReservation(2, domain.StatusActive)
	other.UserID = 5

	svc := newService(storedReservation(1, domain.StatusActive), other)

	// Имена пользователя с id=5 нет в справочнике, поэтому фейк вернет ошибку
	// при резолве; запрашиваем только пользователя 1
	resp, err := svc.GetUserReservations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestGetRoomReservations(t *testing.T) {
	otherDay := storedReservation(2, domain.StatusActive)
	otherDay.ReservationDate = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	svc := newService(storedReservation(1, domain.StatusActive), otherDay)

	resp, err := svc.GetRoomReservations(context.Background(), 1, testDate())
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestCancel_Success(t *testing.T) {
	svc := newService(storedReservation(1, domain.StatusActive))

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestCancel_GatesAndWriteShareTransaction(t *testing.T) {
	svc := newService(storedReservation(1, domain.StatusActive))

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	// Чтение с гейтами и смена статуса прошли в одной транзакции
	repo := svc.reservationRepo.(*fakeReservationRepo)
	assert.True(t, repo.getInTx)
	assert.True(t, repo.updateInTx)
	assert.Equal(t, 1, svc.txManager.(*fakeTxManager).doCalls)
}

func TestCancel_SecondCancelFails(t *testing.T) {
	svc := newService(storedReservation(1, domain.StatusActive))

	require.NoError(t, svc.Cancel(context.Background(), 1))

	// Повторная отмена видит уже отмененную запись
	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newService()

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc := newService(storedReservation(1, domain.StatusCancelled))

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_AlreadyStarted(t *testing.T) {
	// Бронирование началось 14 октября в 08:00, сейчас 09:00
	started := storedReservation(1, domain.StatusActive)
	started.ReservationDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	started.StartTime = types.TimeString("08:00")
	started.EndTime = types.TimeString("17:00")

	svc := newService(started)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestCancel_StartingExactlyNow(t *testing.T) {
	// Момент начала совпадает с текущим: отмена уже невозможна
	starting := storedReservation(1, domain.StatusActive)
	starting.ReservationDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	starting.StartTime = types.TimeString("09:00")
	starting.EndTime = types.TimeString("10:00")

	svc := newService(starting)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}
