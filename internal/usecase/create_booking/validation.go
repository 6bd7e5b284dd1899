package create_booking

import (
	"fmt"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserPhone == "" {
		return fmt.Errorf("%w: userPhone is required", ErrInvalidInput)
	}

	if req.ChefID == "" {
		return fmt.Errorf("%w: chefId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if req.Hours <= 0 || req.Hours > domain.MaxHours {
		return fmt.Errorf("%w: hours must be between 0 and %v", ErrInvalidInput, domain.MaxHours)
	}

	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	if len(req.Details) > domain.MaxDetailsLength {
		return fmt.Errorf("%w: details must be at most %d characters", ErrInvalidInput, domain.MaxDetailsLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
