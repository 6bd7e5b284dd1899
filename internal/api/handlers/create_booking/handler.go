package create_booking

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	createBooking "github.com/chefhub-in/ChefHub-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserPhone   = "missing user session"
	msgChefNotFound       = "chef not found"
	msgChefUnavailable    = "chef directory is unavailable, please try again"
	msgInvalidBookingDate = "booking date cannot be in the past"
	msgInvalidInput       = "invalid booking details"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Телефон пользователя приходит из сессии, не из тела запроса
	userPhone, ok := middleware.GetPhone(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user phone in context")
		handlers.RespondUnauthorized(w, msgMissingUserPhone)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userPhone)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrChefNotFound):
			h.logger.Warn("POST /bookings - Chef not found: chef_id=%s", req.ChefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, createBooking.ErrChefUnavailable):
			h.logger.Warn("POST /bookings - Chef directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgChefUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: chef_id=%s", req.ChefID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: chef_id=%s, error=%v", req.ChefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, chef_id=%s",
		result.Booking.ID, req.ChefID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
