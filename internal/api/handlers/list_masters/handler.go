package list_masters

import (
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/directory/models"
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

// ListMastersResponse HTTP response model
type ListMastersResponse struct {
	Masters []models.MasterResponse `json:"masters"`
}

// Handle GET /api/v1/masters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masters, err := h.service.ListMasters(r.Context())
	if err != nil {
		h.logger.Error("GET /masters - Failed to list masters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters - Listed %d masters", len(masters))
	handlers.RespondJSON(w, http.StatusOK, ListMastersResponse{Masters: masters})
}
