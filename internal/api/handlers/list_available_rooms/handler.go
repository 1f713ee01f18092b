package list_available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	"github.com/asidorov/MRS-ReservationService/internal/domain"
	listAvailableRooms "github.com/asidorov/MRS-ReservationService/internal/usecase/list_available_rooms"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

const (
	msgMissingParams    = "не указаны параметры date, startTime и endTime"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange = "время окончания должно быть позже времени начала"
)

type Handler struct {
	useCase ListAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?date=YYYY-MM-DD&startTime=HH:MM&endTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dateStr := query.Get("date")
	startStr := query.Get("startTime")
	endStr := query.Get("endTime")

	if dateStr == "" || startStr == "" || endStr == "" {
		h.logger.Warn("GET /rooms/available - Missing query parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid startTime %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid endTime %q: %v", endStr, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listAvailableRooms.Request{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, listAvailableRooms.ErrInvalidTimeRange):
			h.logger.Warn("GET /rooms/available - Invalid time range: %s-%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, listAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /rooms/available - Failed to list available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/available - Found %d available rooms for date=%s, window=%s-%s",
		len(response.Rooms), dateStr, startStr, endStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
