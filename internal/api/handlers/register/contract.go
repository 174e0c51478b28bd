package register

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/service/session/models"
)

// SessionService - интерфейс сервиса сессий
type SessionService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.ProfileResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
