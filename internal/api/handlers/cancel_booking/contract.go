package cancel_booking

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, session *domain.Session, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
