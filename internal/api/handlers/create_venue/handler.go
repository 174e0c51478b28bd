package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotManager         = "операция доступна только venue manager"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	var req handlers.VenueRequestDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), session, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrNotVenueManager):
			h.logger.Warn("POST /venues - Not a venue manager: profile=%s", session.Name)
			handlers.RespondForbidden(w, msgNotManager)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /venues - Failed: profile=%s, error=%v", session.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: id=%s, profile=%s", result.ID, session.Name)
	handlers.RespondJSON(w, http.StatusCreated, handlers.VenueDTOFromService(result))
}
