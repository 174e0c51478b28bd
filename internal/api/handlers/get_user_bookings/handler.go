package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/bookings"
)

const (
	msgInvalidName = "некорректное имя профиля"
	msgNotFound    = "профиль не найден"
	msgForbidden   = "доступ запрещен"
)

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []handlers.BookingDTO `json:"bookings"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profiles/{name}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	name := mux.Vars(r)["name"]
	if name == "" {
		handlers.RespondBadRequest(w, msgInvalidName)
		return
	}

	result, err := h.service.ListByProfile(r.Context(), session, name)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /profiles/%s/bookings - Not found", name)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /profiles/%s/bookings - Access denied for profile=%s", name, session.Name)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /profiles/%s/bookings - Failed: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := BookingListResponse{Bookings: make([]handlers.BookingDTO, 0, len(result.Bookings))}
	for i := range result.Bookings {
		response.Bookings = append(response.Bookings, *handlers.BookingDTOFromService(&result.Bookings[i]))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
