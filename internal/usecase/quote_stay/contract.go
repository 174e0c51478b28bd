package quote_stay

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// VenueClient интерфейс клиента площадок upstream API
type VenueClient interface {
	GetVenue(ctx context.Context, id string) (*holidaze.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
