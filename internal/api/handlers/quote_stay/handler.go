package quote_stay

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	quoteStay "github.com/m04kA/HLD-BookingGateway/internal/usecase/quote_stay"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса, ожидается checkIn/checkOut в формате YYYY-MM-DD"
	msgVenueNotFound = "площадка не найдена"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/quote?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD&guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]
	query := r.URL.Query()

	req, err := ToUseCaseRequest(venueID, query.Get("checkIn"), query.Get("checkOut"), query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /venues/%s/quote - Failed to parse query: %v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%s/quote - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("GET /venues/%s/quote - Invalid input: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /venues/%s/quote - Failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
