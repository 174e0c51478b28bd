package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/service/session"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgRegistrationRejected = "регистрация отклонена: проверьте имя, email и пароль"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, session.ErrRegistrationRejected):
			h.logger.Warn("POST /auth/register - Rejected by upstream: %v", err)
			handlers.RespondBadRequest(w, msgRegistrationRejected)

		default:
			h.logger.Error("POST /auth/register - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Profile registered: name=%s", result.Name)
	handlers.RespondJSON(w, http.StatusCreated, ProfileDTOFromService(result))
}
