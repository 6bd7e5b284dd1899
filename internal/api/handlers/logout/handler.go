package logout

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/auth"
)

const (
	msgMissingToken    = "missing session token"
	msgSessionNotFound = "session not found"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, auth.ErrSessionNotFound):
			h.logger.Warn("POST /auth/logout - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /auth/logout - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/logout - Session closed")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
