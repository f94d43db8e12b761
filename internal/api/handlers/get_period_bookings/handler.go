package get_period_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/bookings"
	"github.com/m04kA/SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidDateFrom = "некорректный параметр dateFrom, ожидается YYYY-MM-DD"
	msgInvalidDateTo   = "некорректный параметр dateTo, ожидается YYYY-MM-DD"
	msgInvalidPeriod   = "некорректный период: dateTo раньше dateFrom"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?dateFrom=&dateTo=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateFrom, err := time.Parse(domain.DateFormat, r.URL.Query().Get("dateFrom"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid dateFrom: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFrom)
		return
	}

	dateTo, err := time.Parse(domain.DateFormat, r.URL.Query().Get("dateTo"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid dateTo: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTo)
		return
	}

	result, err := h.service.GetPeriodBookings(r.Context(), &models.GetPeriodBookingsRequest{
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidPeriod):
			h.logger.Warn("GET /bookings - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings for period", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
