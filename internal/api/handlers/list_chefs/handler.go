package list_chefs

import (
	"errors"
	"net/http"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory"
)

const (
	msgMissingToken     = "missing session token"
	msgInvalidFilter    = "invalid filter parameters"
	msgDirectoryLoading = "chef directory is still loading, please retry"
	msgDirectoryDown    = "chef directory is unavailable"
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

// Handle GET /api/v1/chefs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("GET /chefs - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	req, err := parseListQuery(token, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /chefs - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.ListChefs(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidFilter):
			h.logger.Warn("GET /chefs - Invalid filter options: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, directory.ErrNotLoaded):
			h.logger.Info("GET /chefs - Directory not loaded yet")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDirectoryLoading)

		case errors.Is(err, directory.ErrUnavailable):
			h.logger.Warn("GET /chefs - Directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryDown)

		default:
			h.logger.Error("GET /chefs - Failed to list chefs: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chefs - Returned %d chefs", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
