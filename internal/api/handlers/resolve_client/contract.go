package resolve_client

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ResolveOrCreateClient(ctx context.Context, req *models.ResolveClientRequest) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
