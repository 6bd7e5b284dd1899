package advance_booking_status

import (
	"context"

	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AdvanceStatus(ctx context.Context, bookingID string, req *models.AdvanceStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
