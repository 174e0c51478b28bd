package profiles

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// ProfileClient интерфейс клиента профилей upstream API
type ProfileClient interface {
	GetProfile(ctx context.Context, token, name string) (*holidaze.Profile, error)
	UpdateAvatar(ctx context.Context, token, name string, avatar holidaze.Media) (*holidaze.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
