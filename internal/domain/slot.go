package domain

import "github.com/m04kA/SalonBookingService/pkg/types"

// Slot is a candidate [StartTime, EndTime) interval a client could book
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
