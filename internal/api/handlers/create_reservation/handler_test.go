package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/asidorov/MRS-ReservationService/internal/usecase/create_reservation"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, &noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validBody() string {
	return `{
		"userId": 1,
		"roomId": 1,
		"reservationDate": "2025-10-15",
		"startTime": "10:00",
		"endTime": "12:00",
		"reason": "Лекция"
	}`
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:        1,
		UserID:    1,
		UserName:  "Иван Петров",
		RoomID:    1,
		RoomName:  "Аудитория 101",
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    "Лекция",
		Status:    "active",
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"userId": "not a number"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := `{
		"userId": 1,
		"roomId": 1,
		"reservationDate": "15.10.2025",
		"startTime": "10:00",
		"endTime": "12:00",
		"reason": "Лекция"
	}`
	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "time conflict", err: createReservation.ErrTimeConflict, expected: http.StatusConflict},
		{name: "user not found", err: createReservation.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "room not found", err: createReservation.ErrRoomNotFound, expected: http.StatusNotFound},
		{name: "room inactive", err: createReservation.ErrRoomInactive, expected: http.StatusBadRequest},
		{name: "invalid time range", err: createReservation.ErrInvalidTimeRange, expected: http.StatusBadRequest},
		{name: "start not in future", err: createReservation.ErrStartNotInFuture, expected: http.StatusBadRequest},
		{name: "invalid input", err: createReservation.ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "internal", err: createReservation.ErrInternal, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.expected, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
