package directory

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Client, error)
}

// CatalogRepository интерфейс репозитория справочных данных
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListMasters(ctx context.Context) ([]*domain.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
