package resolve_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/directory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNamePhoneRequired  = "имя и телефон обязательны"
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

// Handle POST /api/v1/clients/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResolveClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientID, err := h.service.ResolveOrCreateClient(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /clients/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNamePhoneRequired)

		default:
			h.logger.Error("POST /clients/resolve - Failed to resolve client: phone=%s, error=%v", req.Phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/resolve - Client resolved: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, ResolveClientResponse{ClientID: clientID})
}
