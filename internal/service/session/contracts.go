package session

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByProfile(ctx context.Context, profileName string) error
}

// AuthClient интерфейс клиента аутентификации upstream API
type AuthClient interface {
	Register(ctx context.Context, req holidaze.RegisterRequest) (*holidaze.Profile, error)
	Login(ctx context.Context, req holidaze.LoginRequest) (*holidaze.AuthUser, error)
}

// TokenGenerator интерфейс генерации токенов сессий (для тестирования)
type TokenGenerator interface {
	Generate() (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
