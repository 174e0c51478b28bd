package get_profile

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/service/profiles/models"
)

// ProfileService - интерфейс сервиса профилей
type ProfileService interface {
	Get(ctx context.Context, session *domain.Session, profileName string) (*models.ProfileResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
