package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
	ListForPeriod(ctx context.Context, dateFrom, dateTo time.Time) ([]*domain.BookingWithNames, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.BookingWithNames, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
