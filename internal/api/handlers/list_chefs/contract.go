package list_chefs

import (
	"context"

	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListChefs(ctx context.Context, req *models.ListChefsRequest) (*models.ChefListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
