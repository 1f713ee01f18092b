package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/ptr"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

// fakeReservationRepo повторяет SQL-предикат FindConflicting в памяти
type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) FindConflicting(
	ctx context.Context,
	roomID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}

	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID != roomID || !r.ReservationDate.Equal(date) || !r.IsActive() {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.StartTime.IsBefore(end) && start.IsBefore(r.EndTime) {
			result = append(result, r)
		}
	}
	return result, nil
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func activeReservation(id, roomID int64, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		RoomID:          roomID,
		ReservationDate: testDate(),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		Status:          domain.StatusActive,
	}
}

func TestChecker_Check_EmptyRoom(t *testing.T) {
	checker := NewChecker(&fakeReservationRepo{}, &noopLogger{})

	err := checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", nil)
	assert.NoError(t, err)
}

func TestChecker_Check_OverlapConflicts(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			activeReservation(1, 1, "10:00", "12:00"),
		},
	}
	checker := NewChecker(repo, &noopLogger{})

	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{name: "identical interval", start: "10:00", end: "12:00", conflict: true},
		{name: "overlap at start", start: "09:00", end: "11:00", conflict: true},
		{name: "overlap at end", start: "11:00", end: "13:00", conflict: true},
		{name: "contained", start: "10:30", end: "11:30", conflict: true},
		{name: "containing", start: "09:00", end: "13:00", conflict: true},
		{name: "touching before", start: "08:00", end: "10:00", conflict: false},
		{name: "touching after", start: "12:00", end: "14:00", conflict: false},
		{name: "disjoint", start: "14:00", end: "15:00", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.Check(context.Background(), 1, testDate(),
				types.TimeString(tt.start), types.TimeString(tt.end), nil)
			if tt.conflict {
				assert.ErrorIs(t, err, ErrTimeConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChecker_Check_OtherRoomDoesNotConflict(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			activeReservation(1, 2, "10:00", "12:00"),
		},
	}
	checker := NewChecker(repo, &noopLogger{})

	err := checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", nil)
	assert.NoError(t, err)
}

func TestChecker_Check_CancelledDoesNotConflict(t *testing.T) {
	cancelled := activeReservation(1, 1, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelled

	repo := &fakeReservationRepo{reservations: []*domain.Reservation{cancelled}}
	checker := NewChecker(repo, &noopLogger{})

	err := checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", nil)
	assert.NoError(t, err)
}

func TestChecker_Check_ExcludesOwnReservation(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			activeReservation(7, 1, "10:00", "12:00"),
		},
	}
	checker := NewChecker(repo, &noopLogger{})

	// Без исключения интервал конфликтует сам с собой
	err := checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", nil)
	require.ErrorIs(t, err, ErrTimeConflict)

	// С исключением собственного ID конфликта нет
	err = checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", ptr.Ptr(int64(7)))
	assert.NoError(t, err)

	// Исключение чужого ID не снимает конфликт
	err = checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", ptr.Ptr(int64(8)))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestChecker_Check_RepositoryError(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	checker := NewChecker(repo, &noopLogger{})

	err := checker.Check(context.Background(), 1, testDate(), "10:00", "12:00", nil)
	assert.ErrorIs(t, err, ErrInternal)
}
