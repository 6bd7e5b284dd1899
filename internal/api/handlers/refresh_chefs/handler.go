package refresh_chefs

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory"
)

const (
	msgMissingToken  = "missing session token"
	msgDirectoryDown = "chef directory is unavailable"
	msgRefreshed     = "chef directory refreshed"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RefreshResponse HTTP response model
type RefreshResponse struct {
	Message string `json:"message"`
}

// Handle POST /api/v1/chefs/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /chefs/refresh - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.Refresh(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, directory.ErrUnavailable):
			h.logger.Warn("POST /chefs/refresh - Directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryDown)

		default:
			h.logger.Error("POST /chefs/refresh - Failed to refresh directory: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chefs/refresh - Directory refreshed")
	handlers.RespondJSON(w, http.StatusOK, RefreshResponse{Message: msgRefreshed})
}
