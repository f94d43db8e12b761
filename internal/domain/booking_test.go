package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{StartTime: "11:00", EndTime: "12:00"}

	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  bool
	}{
		{name: "identical interval", start: "11:00", end: "12:00", want: true},
		{name: "candidate inside booking", start: "11:15", end: "11:45", want: true},
		{name: "booking inside candidate", start: "10:30", end: "12:30", want: true},
		{name: "partial overlap at start", start: "10:30", end: "11:30", want: true},
		{name: "partial overlap at end", start: "11:30", end: "12:30", want: true},
		{name: "touching at booking start", start: "10:00", end: "11:00", want: false},
		{name: "touching at booking end", start: "12:00", end: "13:00", want: false},
		{name: "fully before", start: "09:00", end: "10:00", want: false},
		{name: "fully after", start: "13:00", end: "14:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestWorkWindow_Contains(t *testing.T) {
	window := &WorkWindow{StartTime: "10:00", EndTime: "19:00"}

	assert.True(t, window.Contains("10:00", "11:00"))
	assert.True(t, window.Contains("18:00", "19:00"))
	assert.True(t, window.Contains("10:00", "19:00"))
	assert.False(t, window.Contains("09:00", "10:00"))
	assert.False(t, window.Contains("18:30", "19:30"))
	assert.False(t, window.Contains("09:45", "19:15"))
}

func TestBooking_StatusPredicates(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, confirmed.IsConfirmed())
	assert.False(t, confirmed.IsCancelled())
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.IsConfirmed())
}
