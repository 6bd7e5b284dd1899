package verify_otp

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "please enter a valid 10-digit mobile number"
	msgInvalidCode        = "invalid verification code"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/otp/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.service.VerifyCode(r.Context(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhone):
			h.logger.Warn("POST /auth/otp/verify - Invalid phone number")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, auth.ErrInvalidCode):
			h.logger.Warn("POST /auth/otp/verify - Invalid verification code")
			handlers.RespondUnauthorized(w, msgInvalidCode)

		default:
			h.logger.Error("POST /auth/otp/verify - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/otp/verify - Session created")
	handlers.RespondJSON(w, http.StatusOK, FromSession(sess))
}
