package request_otp

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "please enter a valid 10-digit mobile number"
	msgSendFailed         = "failed to send verification code, please try again"
	msgCodeSent           = "verification code sent"
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

// Handle POST /api/v1/auth/otp/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.RequestCode(r.Context(), req.Phone); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhone):
			h.logger.Warn("POST /auth/otp/request - Invalid phone number")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, auth.ErrSendFailed):
			h.logger.Error("POST /auth/otp/request - Failed to send code: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /auth/otp/request - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/otp/request - Verification code sent")
	handlers.RespondJSON(w, http.StatusOK, RequestOTPResponse{Message: msgCodeSent})
}
