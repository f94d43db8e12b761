package create_booking

import (
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotPlacement проверяет, что интервал [start, end) — валидный
// кандидат в рабочем окне: целиком помещается в окно и выровнен по сетке
// слотов (смещение от начала окна кратно domain.SlotStepMinutes)
func validateSlotPlacement(window *domain.WorkWindow, start, end types.TimeString) error {
	if !window.Contains(start, end) {
		return fmt.Errorf("%w: interval %s-%s is outside work window %s-%s",
			ErrInvalidTimeSlot, start, end, window.StartTime, window.EndTime)
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	windowStartMinutes, err := window.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if (startMinutes-windowStartMinutes)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start %s is not aligned to the %d-minute slot grid",
			ErrInvalidTimeSlot, start, domain.SlotStepMinutes)
	}

	return nil
}

// findOverlapping возвращает первое подтверждённое бронирование,
// пересекающееся с интервалом [start, end), либо nil
func findOverlapping(start, end types.TimeString, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}
		if booking.Overlaps(start, end) {
			return booking
		}
	}
	return nil
}
