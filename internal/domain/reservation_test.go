package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{
			name:   "identical intervals overlap",
			aStart: "10:00", aEnd: "12:00",
			bStart: "10:00", bEnd: "12:00",
			expected: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: "10:00", aEnd: "12:00",
			bStart: "11:00", bEnd: "13:00",
			expected: true,
		},
		{
			name:   "partial overlap at the start",
			aStart: "11:00", aEnd: "13:00",
			bStart: "10:00", bEnd: "12:00",
			expected: true,
		},
		{
			name:   "contained interval overlaps",
			aStart: "10:00", aEnd: "14:00",
			bStart: "11:00", bEnd: "12:00",
			expected: true,
		},
		{
			name:   "containing interval overlaps",
			aStart: "11:00", aEnd: "12:00",
			bStart: "10:00", bEnd: "14:00",
			expected: true,
		},
		{
			name:   "one minute overlap",
			aStart: "10:00", aEnd: "12:00",
			bStart: "11:59", bEnd: "13:00",
			expected: true,
		},
		{
			name:   "touching endpoints do not overlap (a before b)",
			aStart: "10:00", aEnd: "12:00",
			bStart: "12:00", bEnd: "14:00",
			expected: false,
		},
		{
			name:   "touching endpoints do not overlap (b before a)",
			aStart: "12:00", aEnd: "14:00",
			bStart: "10:00", bEnd: "12:00",
			expected: false,
		},
		{
			name:   "disjoint intervals do not overlap",
			aStart: "08:00", aEnd: "09:00",
			bStart: "15:00", bEnd: "16:00",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Overlaps(
				types.TimeString(tt.aStart), types.TimeString(tt.aEnd),
				types.TimeString(tt.bStart), types.TimeString(tt.bEnd),
			)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestOverlaps_Randomized сверяет Overlaps с поминутной проверкой принадлежности:
// интервалы пересекаются тогда и только тогда, когда у них есть общая минута
func TestOverlaps_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	midnight := types.TimeString("00:00")

	at := func(minutes int) types.TimeString {
		ts, err := midnight.AddMinutes(minutes)
		require.NoError(t, err)
		return ts
	}

	randomInterval := func() (types.TimeString, types.TimeString) {
		start := rng.Intn(23 * 60)
		end := start + 1 + rng.Intn(24*60-start-1)
		return at(start), at(end)
	}

	sharesMinute := func(aStart, aEnd, bStart, bEnd types.TimeString) bool {
		for m := 0; m < 24*60; m++ {
			tick := at(m)
			inA := !tick.IsBefore(aStart) && tick.IsBefore(aEnd)
			inB := !tick.IsBefore(bStart) && tick.IsBefore(bEnd)
			if inA && inB {
				return true
			}
		}
		return false
	}

	for i := 0; i < 500; i++ {
		aStart, aEnd := randomInterval()
		bStart, bEnd := randomInterval()

		expected := sharesMinute(aStart, aEnd, bStart, bEnd)
		require.Equal(t, expected, Overlaps(aStart, aEnd, bStart, bEnd),
			"a=[%s, %s) b=[%s, %s)", aStart, aEnd, bStart, bEnd)
	}
}

func TestReservation_StartsAt(t *testing.T) {
	r := &Reservation{
		ReservationDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:30"),
		EndTime:         types.TimeString("12:00"),
	}

	expected := time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, expected, r.StartsAt())
}

func TestReservation_IsUpcoming(t *testing.T) {
	r := &Reservation{
		ReservationDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("12:00"),
	}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{
			name:     "now before start",
			now:      time.Date(2025, 10, 15, 9, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "now exactly at start is not upcoming",
			now:      time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "now after start",
			now:      time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "previous day",
			now:      time.Date(2025, 10, 14, 23, 0, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.IsUpcoming(tt.now))
		})
	}
}

func TestReservation_StatusChecks(t *testing.T) {
	active := &Reservation{Status: StatusActive}
	assert.True(t, active.IsActive())
	assert.False(t, active.IsCancelled())

	cancelled := &Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsCancelled())
}
