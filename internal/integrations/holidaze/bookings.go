package holidaze

import (
	"context"
	"net/http"
	"net/url"
)

const (
	opCreateBooking = "bookings.create"
	opCancelBooking = "bookings.cancel"
)

// CreateBooking отправляет подтвержденное бронирование в upstream API.
// Локальная валидация дат не отменяет серверную: сервер может ответить 409,
// если конкурирующее бронирование успело закоммититься первым.
func (c *Client) CreateBooking(ctx context.Context, token string, payload BookingPayload) (*Booking, error) {
	c.log.Info("Creating booking venue=%s, dateFrom=%s, dateTo=%s, guests=%d",
		payload.VenueID, payload.DateFrom, payload.DateTo, payload.Guests)

	booking, err := do[Booking](ctx, c, call{
		operation:   opCreateBooking,
		method:      http.MethodPost,
		path:        "/holidaze/bookings",
		token:       token,
		body:        payload,
		notFoundErr: ErrVenueNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking отменяет бронирование по ID
func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	c.log.Info("Cancelling booking id=%s", id)

	_, err := do[struct{}](ctx, c, call{
		operation:   opCancelBooking,
		method:      http.MethodDelete,
		path:        "/holidaze/bookings/" + url.PathEscape(id),
		token:       token,
		notFoundErr: ErrBookingNotFound,
	})
	return err
}
