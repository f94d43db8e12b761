package domain

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a client appointment with a master for a service.
// EndTime is always derived from the service duration, never supplied
// by callers. Cancellation is a status transition; cancelled bookings
// are kept for history and no longer occupy their interval.
type Booking struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	MasterID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking currently occupies its interval
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps reports whether the booking's [StartTime, EndTime) interval
// overlaps the given half-open interval. Intervals that merely touch
// (one ends exactly where the other starts) do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// BookingWithNames booking joined with client, service and master names.
// Read-side projection used by the listing queries.
type BookingWithNames struct {
	ID          int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	ClientName  string
	ClientPhone string
	ServiceName string
	MasterName  string
}
