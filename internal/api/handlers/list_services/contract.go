package list_services

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListServices(ctx context.Context) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
