package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/asidorov/MRS-ReservationService/internal/service/reservations"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	err         error
	cancelledID int64
}

func (f *fakeService) Cancel(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.cancelledID = id
	return nil
}

func doRequest(t *testing.T, svc ReservationService, path string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, &noopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "/api/v1/reservations/42/cancel")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.cancelledID)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/v1/reservations/abc/cancel")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: reservations.ErrReservationNotFound, expected: http.StatusNotFound},
		{name: "already cancelled", err: reservations.ErrAlreadyCancelled, expected: http.StatusBadRequest},
		{name: "already started", err: reservations.ErrAlreadyStarted, expected: http.StatusBadRequest},
		{name: "internal", err: reservations.ErrInternal, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeService{err: tt.err}, "/api/v1/reservations/1/cancel")
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
