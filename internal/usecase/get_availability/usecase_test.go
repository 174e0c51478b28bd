package get_availability

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

type fakeVenueClient struct {
	venue *holidaze.Venue
	err   error
	calls int
}

func (f *fakeVenueClient) GetVenue(ctx context.Context, id string) (*holidaze.Venue, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.venue, nil
}

func day(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExecute_BlockedDatesSortedAndDeduplicated(t *testing.T) {
	client := &fakeVenueClient{venue: &holidaze.Venue{
		ID:        "venue-1",
		Price:     100,
		MaxGuests: 4,
		Bookings: []holidaze.Booking{
			{ID: "b2", DateFrom: day("2024-03-03"), DateTo: day("2024-03-04"), Guests: 2},
			{ID: "b1", DateFrom: day("2024-03-01"), DateTo: day("2024-03-03"), Guests: 2},
		},
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "venue-1"})

	require.NoError(t, err)
	assert.Equal(t, "venue-1", resp.VenueID)
	assert.Equal(t, 100.0, resp.PricePerNight)
	assert.Equal(t, 4, resp.MaxGuests)
	assert.Equal(t, []time.Time{
		day("2024-03-01"), day("2024-03-02"), day("2024-03-03"), day("2024-03-04"),
	}, resp.BlockedDates)
}

func TestExecute_NoBookings(t *testing.T) {
	client := &fakeVenueClient{venue: &holidaze.Venue{ID: "venue-1", Price: 100, MaxGuests: 4}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "venue-1"})

	require.NoError(t, err)
	assert.Empty(t, resp.BlockedDates)
}

func TestExecute_FetchesFreshOnEveryCall(t *testing.T) {
	client := &fakeVenueClient{venue: &holidaze.Venue{ID: "venue-1"}}
	uc := NewUseCase(client, nopLogger{})

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), &Request{VenueID: "venue-1"})
		require.NoError(t, err)
	}

	assert.Equal(t, 3, client.calls)
}

func TestExecute_VenueNotFound(t *testing.T) {
	client := &fakeVenueClient{err: holidaze.ErrVenueNotFound}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: "missing"})

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_EmptyVenueID(t *testing.T) {
	uc := NewUseCase(&fakeVenueClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
