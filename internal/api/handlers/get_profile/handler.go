package get_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/profiles"
)

const (
	msgInvalidProfileName = "некорректное имя профиля"
	msgProfileNotFound    = "профиль не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profiles/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	name := mux.Vars(r)["name"]
	if name == "" {
		handlers.RespondBadRequest(w, msgInvalidProfileName)
		return
	}

	result, err := h.service.Get(r.Context(), session, name)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("GET /profiles/%s - Not found", name)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profiles.ErrAccessDenied):
			h.logger.Warn("GET /profiles/%s - Access denied: session=%s", name, session.Name)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /profiles/%s - Failed: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profiles/%s - OK: venues=%d, bookings=%d", name, len(result.Venues), len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, ProfileDTOFromService(result))
}
