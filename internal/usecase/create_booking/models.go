package create_booking

import (
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/types"
)

// Request входные данные для создания бронирования
type Request struct {
	UserPhone string
	ChefID    string
	Date      time.Time
	StartTime types.TimeString
	Guests    int
	Hours     float64
	Location  string
	Occasion  string
	Details   string
}

// Response результат создания бронирования
type Response struct {
	Booking *domain.Booking
}
