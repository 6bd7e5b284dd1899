package get_chef

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory"
)

const (
	msgMissingToken   = "missing session token"
	msgInvalidChefID  = "invalid chef id"
	msgChefNotFound   = "chef not found"
	msgDirectoryDown  = "chef directory is unavailable"
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

// Handle GET /api/v1/chefs/{chefId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("GET /chefs/{id} - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	chefID := mux.Vars(r)["chefId"]
	if chefID == "" {
		h.logger.Warn("GET /chefs/{id} - Empty chef ID")
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	chef, err := h.service.GetChef(r.Context(), token, chefID)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrChefNotFound):
			h.logger.Warn("GET /chefs/{id} - Chef not found: chef_id=%s", chefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, directory.ErrUnavailable), errors.Is(err, directory.ErrNotLoaded):
			h.logger.Warn("GET /chefs/{id} - Directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryDown)

		default:
			h.logger.Error("GET /chefs/{id} - Failed to get chef: chef_id=%s, error=%v", chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chefs/{id} - Chef retrieved: chef_id=%s", chefID)
	handlers.RespondJSON(w, http.StatusOK, chef)
}
