package domain

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// WorkWindow is a master's working hours for a single calendar date.
// At most one window exists per (master, date); absence of a window
// means the master is unavailable that entire date.
type WorkWindow struct {
	ID        int64
	MasterID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Contains reports whether the half-open interval [start, end) lies
// entirely within the window.
func (w *WorkWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}
