package update_avatar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/profiles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProfileName = "некорректное имя профиля"
	msgProfileNotFound    = "профиль не найден"
	msgForbidden          = "можно менять только свой аватар"
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

// Handle PUT /api/v1/profiles/{name}/avatar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	name := mux.Vars(r)["name"]
	if name == "" {
		handlers.RespondBadRequest(w, msgInvalidProfileName)
		return
	}

	var req AvatarRequestDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profiles/%s/avatar - Invalid request body: %v", name, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAvatar(r.Context(), session, name, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("PUT /profiles/%s/avatar - Not found", name)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profiles.ErrAccessDenied):
			h.logger.Warn("PUT /profiles/%s/avatar - Access denied: session=%s", name, session.Name)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("PUT /profiles/%s/avatar - Invalid input: %v", name, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /profiles/%s/avatar - Failed: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profiles/%s/avatar - Avatar updated", name)
	handlers.RespondJSON(w, http.StatusOK, &AvatarResponseDTO{
		Name:      result.Name,
		AvatarURL: result.AvatarURL,
		AvatarAlt: result.AvatarAlt,
	})
}
