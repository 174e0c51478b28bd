package logout

import "context"

// SessionService - интерфейс сервиса сессий
type SessionService interface {
	Logout(ctx context.Context, token string) error
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
