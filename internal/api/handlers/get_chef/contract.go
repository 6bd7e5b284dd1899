package get_chef

import (
	"context"

	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	GetChef(ctx context.Context, sessionToken, chefID string) (*models.ChefResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
