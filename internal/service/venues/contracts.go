package venues

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// VenueClient интерфейс клиента площадок upstream API
type VenueClient interface {
	ListVenues(ctx context.Context) ([]holidaze.Venue, error)
	SearchVenues(ctx context.Context, query string) ([]holidaze.Venue, error)
	GetVenue(ctx context.Context, id string) (*holidaze.Venue, error)
	CreateVenue(ctx context.Context, token string, payload holidaze.VenuePayload) (*holidaze.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, payload holidaze.VenuePayload) (*holidaze.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
