package get_venue

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

type VenueService interface {
	GetByID(ctx context.Context, id string) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
