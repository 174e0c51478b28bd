package holidaze

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-api-key", 5*time.Second, nopLogger{}), srv
}

func TestGetVenue_DecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/holidaze/venues/venue-1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_bookings"))
		assert.Equal(t, "true", r.URL.Query().Get("_owner"))
		assert.Equal(t, "test-api-key", r.Header.Get("X-Noroff-API-Key"))
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id":        "venue-1",
				"name":      "Seaside Cabin",
				"price":     100.0,
				"maxGuests": 4,
				"bookings": []map[string]interface{}{
					{"id": "b1", "dateFrom": "2024-06-02T00:00:00Z", "dateTo": "2024-06-04T00:00:00Z", "guests": 2},
				},
			},
		})
	})

	venue, err := client.GetVenue(context.Background(), "venue-1")

	require.NoError(t, err)
	assert.Equal(t, "venue-1", venue.ID)
	assert.Equal(t, "Seaside Cabin", venue.Name)
	assert.Equal(t, 100.0, venue.Price)
	require.Len(t, venue.Bookings, 1)
	assert.Equal(t, "b1", venue.Bookings[0].ID)
}

func TestGetVenue_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetVenue(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateBooking_SendsTokenAndPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/holidaze/bookings", r.URL.Path)
		assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))

		var payload BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "venue-1", payload.VenueID)
		assert.Equal(t, 2, payload.Guests)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"id": "booking-1", "guests": 2},
		})
	})

	booking, err := client.CreateBooking(context.Background(), "upstream-token", BookingPayload{
		DateFrom: "2024-06-10T00:00:00Z",
		DateTo:   "2024-06-13T00:00:00Z",
		Guests:   2,
		VenueID:  "venue-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
}

func TestCreateBooking_ConflictMapsToSentinel(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "The selected dates are not available"}},
		})
	})

	_, err := client.CreateBooking(context.Background(), "upstream-token", BookingPayload{VenueID: "venue-1"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "not available")
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrValidation},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"conflict", http.StatusConflict, ErrConflict},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.CreateBooking(context.Background(), "token", BookingPayload{VenueID: "venue-1"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLogin_UnauthorizedMapsToInvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/auth/login", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "Invalid email or password"}},
		})
	})

	_, err := client.Login(context.Background(), LoginRequest{Email: "alice@stud.noroff.no", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"name":         "alice",
				"email":        "alice@stud.noroff.no",
				"venueManager": true,
				"accessToken":  "upstream-token",
			},
		})
	})

	user, err := client.Login(context.Background(), LoginRequest{Email: "alice@stud.noroff.no", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.True(t, user.VenueManager)
	assert.Equal(t, "upstream-token", user.AccessToken)
}

func TestCancelBooking_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/holidaze/bookings/booking-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.CancelBooking(context.Background(), "upstream-token", "booking-1")

	require.NoError(t, err)
}

func TestCancelBooking_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.CancelBooking(context.Background(), "upstream-token", "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSearchVenues_EscapesQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/venues/search", r.URL.Path)
		assert.Equal(t, "seaside cabin", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"id": "venue-1"}},
		})
	})

	venues, err := client.SearchVenues(context.Background(), "seaside cabin")

	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "venue-1", venues[0].ID)
}

func TestDo_MalformedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.GetVenue(context.Background(), "venue-1")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
