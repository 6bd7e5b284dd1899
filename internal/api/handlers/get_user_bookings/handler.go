package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUserPhone = "missing user session"
	msgInvalidStatus    = "invalid booking status"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userPhone, ok := middleware.GetPhone(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user phone")
		handlers.RespondUnauthorized(w, msgMissingUserPhone)
		return
	}

	req := &models.GetUserBookingsRequest{
		UserPhone: userPhone,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
