package update_venue

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

type VenueService interface {
	Update(ctx context.Context, session *domain.Session, id string, req *models.VenueRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
