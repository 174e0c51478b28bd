package login

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/service/session/models"
)

// SessionService - интерфейс сервиса сессий
type SessionService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
