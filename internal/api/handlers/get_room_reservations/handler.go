package get_room_reservations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/domain"
)

const (
	msgInvalidRoomID = "некорректный ID переговорной"
	msgMissingDate   = "не указана дата, ожидается параметр date"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/reservations?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/reservations - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Дата обязательна: расписание переговорной смотрят на конкретный день
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/reservations - Missing date parameter: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/reservations - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetRoomReservations(r.Context(), roomID, date)
	if err != nil {
		h.logger.Error("GET /rooms/{id}/reservations - Failed to get reservations: room_id=%d, error=%v",
			roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/{id}/reservations - Retrieved %d reservations for room_id=%d, date=%s",
		len(result.Reservations), roomID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
