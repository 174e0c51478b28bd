package list_venues

import (
	"net/http"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
)

// VenueListResponse HTTP response model
type VenueListResponse struct {
	Venues []handlers.VenueDTO `json:"venues"`
}

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

// Handle GET /api/v1/venues?q=search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.service.List(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /venues - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := VenueListResponse{Venues: make([]handlers.VenueDTO, 0, len(result.Venues))}
	for i := range result.Venues {
		response.Venues = append(response.Venues, *handlers.VenueDTOFromService(&result.Venues[i]))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
