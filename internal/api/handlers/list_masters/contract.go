package list_masters

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListMasters(ctx context.Context) ([]models.MasterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
