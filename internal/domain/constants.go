package domain

// Slot generation policy
const (
	// SlotStepMinutes фиксированный шаг генерации слотов.
	// Не зависит от длительности услуги.
	SlotStepMinutes = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
