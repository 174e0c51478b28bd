package logout

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/service/session"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	err := h.service.Logout(r.Context(), sess.Token)
	if err != nil {
		// Сессия уже удалена - считаем логаут успешным
		if !errors.Is(err, session.ErrSessionNotFound) {
			h.logger.Error("POST /auth/logout - Failed: name=%s, error=%v", sess.Name, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST /auth/logout - Session removed: name=%s", sess.Name)
	w.WriteHeader(http.StatusNoContent)
}
