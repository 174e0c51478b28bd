package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingClient struct {
	bookings  []holidaze.Booking
	err       error
	cancelled string
}

func (f *fakeBookingClient) GetProfileBookings(ctx context.Context, token, name string) ([]holidaze.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeBookingClient) CancelBooking(ctx context.Context, token, id string) error {
	if f.err != nil {
		return f.err
	}
	f.cancelled = id
	return nil
}

func aliceSession() *domain.Session {
	return &domain.Session{Token: "t", AccessToken: "up", Name: "alice"}
}

func day(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestListByProfile_RecomputesNightsAndTotal(t *testing.T) {
	client := &fakeBookingClient{bookings: []holidaze.Booking{
		{
			ID:       "b1",
			DateFrom: day("2024-06-10"),
			DateTo:   day("2024-06-13"),
			Guests:   2,
			Venue:    &holidaze.Venue{ID: "venue-1", Name: "Seaside Cabin", Price: 100},
		},
	}}
	svc := NewService(client, nopLogger{})

	resp, err := svc.ListByProfile(context.Background(), aliceSession(), "alice")

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	b := resp.Bookings[0]
	assert.Equal(t, "Seaside Cabin", b.VenueName)
	// Ночи и стоимость пересчитаны движком из дат и цены
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 300.0, b.Total)
}

func TestListByProfile_ForeignHistoryDenied(t *testing.T) {
	svc := NewService(&fakeBookingClient{}, nopLogger{})

	_, err := svc.ListByProfile(context.Background(), aliceSession(), "bob")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	client := &fakeBookingClient{}
	svc := NewService(client, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), aliceSession(), "b1"))
	assert.Equal(t, "b1", client.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	client := &fakeBookingClient{err: holidaze.ErrBookingNotFound}
	svc := NewService(client, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), aliceSession(), "missing"), ErrBookingNotFound)
}

func TestCancel_Forbidden(t *testing.T) {
	client := &fakeBookingClient{err: holidaze.ErrForbidden}
	svc := NewService(client, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), aliceSession(), "b1"), ErrAccessDenied)
}

func TestCancel_EmptyID(t *testing.T) {
	svc := NewService(&fakeBookingClient{}, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), aliceSession(), ""), ErrInvalidInput)
}
