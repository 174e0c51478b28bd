package list_venues

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

type VenueService interface {
	List(ctx context.Context, query string) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
