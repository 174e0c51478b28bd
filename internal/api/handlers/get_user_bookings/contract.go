package get_user_bookings

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/service/bookings/models"
)

type BookingService interface {
	ListByProfile(ctx context.Context, session *domain.Session, profileName string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
