package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

func window(start, end types.TimeString) *domain.WorkWindow {
	return &domain.WorkWindow{
		MasterID:  1,
		StartTime: start,
		EndTime:   end,
	}
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	// Окно 10:00-19:00, услуга 60 минут: кандидаты с шагом 15 минут,
	// последний допустимый старт 18:00 => 33 слота
	slots, err := generateSlots(window("10:00", "19:00"), 60, nil)
	require.NoError(t, err)

	require.Len(t, slots, 33)
	assert.Equal(t, domain.Slot{StartTime: "10:00", EndTime: "11:00"}, slots[0])
	assert.Equal(t, domain.Slot{StartTime: "18:00", EndTime: "19:00"}, slots[32])
}

func TestGenerateSlots_WithBooking(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	}

	slots, err := generateSlots(window("10:00", "19:00"), 60, bookings)
	require.NoError(t, err)

	starts := make(map[string]bool, len(slots))
	for _, s := range slots {
		starts[s.StartTime.String()] = true
	}

	// Граничные касания не считаются пересечением
	assert.True(t, starts["10:00"], "slot ending exactly at booking start must be available")
	assert.True(t, starts["12:00"], "slot starting exactly at booking end must be available")

	// Любой кандидат, пересекающий 11:00-12:00, отброшен
	for _, taken := range []string{"10:15", "10:30", "10:45", "11:00", "11:15", "11:30", "11:45"} {
		assert.False(t, starts[taken], "slot %s overlaps the booking", taken)
	}
}

func TestGenerateSlots_CancelledBookingIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "11:00", EndTime: "12:00", Status: domain.StatusCancelled},
	}

	slots, err := generateSlots(window("10:00", "19:00"), 60, bookings)
	require.NoError(t, err)
	assert.Len(t, slots, 33)
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	slots, err := generateSlots(window("10:00", "11:00"), 120, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DurationExactlyWindow(t *testing.T) {
	slots, err := generateSlots(window("10:00", "11:30"), 90, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domain.Slot{StartTime: "10:00", EndTime: "11:30"}, slots[0])
}

func TestGenerateSlots_ShortService(t *testing.T) {
	// Услуга 30 минут в окне 10:00-12:00: старты 10:00..11:30 => 7 слотов
	slots, err := generateSlots(window("10:00", "12:00"), 30, nil)
	require.NoError(t, err)

	require.Len(t, slots, 7)
	assert.Equal(t, domain.Slot{StartTime: "10:00", EndTime: "10:30"}, slots[0])
	assert.Equal(t, domain.Slot{StartTime: "11:30", EndTime: "12:00"}, slots[6])
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "13:00", EndTime: "14:30", Status: domain.StatusConfirmed},
	}

	first, err := generateSlots(window("10:00", "19:00"), 90, bookings)
	require.NoError(t, err)
	second, err := generateSlots(window("10:00", "19:00"), 90, bookings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "19:00", Status: domain.StatusConfirmed},
	}

	slots, err := generateSlots(window("10:00", "19:00"), 60, bookings)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
