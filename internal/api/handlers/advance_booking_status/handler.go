package advance_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgMissingUserPhone   = "missing user session"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
	msgInvalidStatus      = "invalid booking status"
	msgInvalidTransition  = "booking status can only move one step forward"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/status - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userPhone, ok := middleware.GetPhone(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user phone")
		handlers.RespondUnauthorized(w, msgMissingUserPhone)
		return
	}

	var req AdvanceStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.AdvanceStatusRequest{
		UserPhone: userPhone,
		Status:    req.Status,
		Note:      req.Note,
	}

	booking, err := h.service.AdvanceStatus(r.Context(), bookingID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking_id=%s, status=%s", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%s, status=%s", bookingID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to advance status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status advanced: booking_id=%s, status=%s", bookingID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
