package create_booking

import (
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	bookingModels "github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings/models"
	createBooking "github.com/chefhub-in/ChefHub-BookingService/internal/usecase/create_booking"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ChefID   string  `json:"chefId"`
	Date     string  `json:"date"` // "2025-10-20"
	Time     string  `json:"time"` // "18:00"
	Guests   int     `json:"guests"`
	Hours    float64 `json:"hours"`
	Location string  `json:"location"`
	Occasion string  `json:"occasion"`
	Details  string  `json:"details"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userPhone string) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserPhone: userPhone,
		ChefID:    r.ChefID,
		Date:      date,
		StartTime: startTime,
		Guests:    r.Guests,
		Hours:     r.Hours,
		Location:  r.Location,
		Occasion:  r.Occasion,
		Details:   r.Details,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *bookingModels.BookingResponse {
	return bookingModels.FromDomainBooking(resp.Booking)
}
