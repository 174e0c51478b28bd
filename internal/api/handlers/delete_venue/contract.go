package delete_venue

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// VenueService - интерфейс сервиса управления площадками
type VenueService interface {
	Delete(ctx context.Context, session *domain.Session, id string) error
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
