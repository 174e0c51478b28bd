package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	getAvailability "github.com/m04kA/HLD-BookingGateway/internal/usecase/get_availability"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]
	if venueID == "" {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{VenueID: venueID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%s/availability - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/%s/availability - Invalid input: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		default:
			h.logger.Error("GET /venues/%s/availability - Failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
