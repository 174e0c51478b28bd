package update_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVenueID     = "некорректный ID площадки"
	msgVenueNotFound      = "площадка не найдена"
	msgNotManager         = "операция доступна только venue manager"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	venueID := mux.Vars(r)["venueId"]
	if venueID == "" {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req handlers.VenueRequestDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/%s - Invalid request body: %v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), session, venueID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/%s - Not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venues.ErrNotVenueManager):
			h.logger.Warn("PUT /venues/%s - Not a venue manager: profile=%s", venueID, session.Name)
			handlers.RespondForbidden(w, msgNotManager)

		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("PUT /venues/%s - Access denied: profile=%s", venueID, session.Name)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("PUT /venues/%s - Invalid input: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /venues/%s - Failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/%s - Venue updated by profile=%s", venueID, session.Name)
	handlers.RespondJSON(w, http.StatusOK, handlers.VenueDTOFromService(result))
}
