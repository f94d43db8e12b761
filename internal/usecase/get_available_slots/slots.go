package get_available_slots

import (
	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// generateSlots строит список доступных слотов в рабочем окне мастера.
//
// Кандидаты генерируются от начала окна с фиксированным шагом
// domain.SlotStepMinutes (шаг не зависит от длительности услуги).
// Кандидат, конец которого выходит за время закрытия, и все последующие
// отбрасываются. Кандидат доступен, если он не пересекается ни с одним
// подтверждённым бронированием.
//
// Интервалы полуоткрытые: [a,b) и [c,d) пересекаются ⇔ a<d и c<b.
// Бронирование, заканчивающееся ровно в начале кандидата (или
// начинающееся ровно в его конце), пересечением не считается.
func generateSlots(
	window *domain.WorkWindow,
	durationMinutes int,
	bookings []*domain.Booking,
) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)
	current := window.StartTime

	for {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		if end.IsAfter(window.EndTime) {
			break
		}

		if !overlapsAny(current, end, bookings) {
			slots = append(slots, domain.Slot{StartTime: current, EndTime: end})
		}

		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// overlapsAny возвращает true, если интервал [start, end) пересекается
// хотя бы с одним подтверждённым бронированием
func overlapsAny(start, end types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}
		if booking.Overlaps(start, end) {
			return true
		}
	}
	return false
}
