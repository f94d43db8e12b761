package domain

// Client represents a salon client. Phone and TelegramID are unique.
// A client record is created on first contact and never updated by the
// engine afterwards (first write wins).
type Client struct {
	ID         int64
	Name       string
	Phone      string
	TelegramID *int64
}

// Service represents a salon service. Immutable reference data,
// seeded at startup.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           int
}

// Master represents a staff member. Immutable reference data.
// Every master is treated as eligible for every service; there is
// deliberately no master-service eligibility matrix.
type Master struct {
	ID             int64
	Name           string
	Specialization string
}
