package delete_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
	msgNotManager     = "операция доступна только venue manager"
	msgForbidden      = "доступ запрещен"
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

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	venueID := mux.Vars(r)["venueId"]
	if venueID == "" {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	err := h.service.Delete(r.Context(), session, venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/%s - Not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venues.ErrNotVenueManager):
			h.logger.Warn("DELETE /venues/%s - Not a venue manager: profile=%s", venueID, session.Name)
			handlers.RespondForbidden(w, msgNotManager)

		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("DELETE /venues/%s - Access denied: profile=%s", venueID, session.Name)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /venues/%s - Failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/%s - Venue deleted by profile=%s", venueID, session.Name)
	w.WriteHeader(http.StatusNoContent)
}
