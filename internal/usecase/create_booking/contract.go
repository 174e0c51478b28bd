package create_booking

import (
	"context"

	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// VenueClient интерфейс клиента площадок upstream API
type VenueClient interface {
	GetVenue(ctx context.Context, id string) (*holidaze.Venue, error)
}

// BookingClient интерфейс клиента бронирований upstream API
type BookingClient interface {
	CreateBooking(ctx context.Context, token string, payload holidaze.BookingPayload) (*holidaze.Booking, error)
}

// SubmissionGuard интерфейс защиты от повторной отправки одного и того же
// выбора, пока предыдущая отправка не завершилась
type SubmissionGuard interface {
	Begin(key string) error
	Finish(key string, confirmed bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
