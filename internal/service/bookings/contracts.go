package bookings

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// BookingClient интерфейс клиента бронирований upstream API
type BookingClient interface {
	GetProfileBookings(ctx context.Context, token, name string) ([]holidaze.Booking, error)
	CancelBooking(ctx context.Context, token, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
