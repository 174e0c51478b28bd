package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	"github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
	"github.com/m04kA/HLD-BookingGateway/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeVenueClient struct {
	venues      []holidaze.Venue
	venue       *holidaze.Venue
	getErr      error
	listCalls   int
	searchCalls int
	searchQuery string
	updated     *holidaze.VenuePayload
	deleted     string
}

func (f *fakeVenueClient) ListVenues(ctx context.Context) ([]holidaze.Venue, error) {
	f.listCalls++
	return f.venues, nil
}

func (f *fakeVenueClient) SearchVenues(ctx context.Context, query string) ([]holidaze.Venue, error) {
	f.searchCalls++
	f.searchQuery = query
	return f.venues, nil
}

func (f *fakeVenueClient) GetVenue(ctx context.Context, id string) (*holidaze.Venue, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.venue, nil
}

func (f *fakeVenueClient) CreateVenue(ctx context.Context, token string, payload holidaze.VenuePayload) (*holidaze.Venue, error) {
	return &holidaze.Venue{ID: "venue-new", Name: payload.Name, Price: payload.Price, MaxGuests: payload.MaxGuests}, nil
}

func (f *fakeVenueClient) UpdateVenue(ctx context.Context, token, id string, payload holidaze.VenuePayload) (*holidaze.Venue, error) {
	f.updated = &payload
	return &holidaze.Venue{ID: id, Name: payload.Name, Price: payload.Price, MaxGuests: payload.MaxGuests}, nil
}

func (f *fakeVenueClient) DeleteVenue(ctx context.Context, token, id string) error {
	f.deleted = id
	return nil
}

func managerSession() *domain.Session {
	return &domain.Session{Token: "t", AccessToken: "up", Name: "alice", VenueManager: true}
}

func customerSession() *domain.Session {
	return &domain.Session{Token: "t", AccessToken: "up", Name: "bob"}
}

func ownedVenue(owner string) *holidaze.Venue {
	return &holidaze.Venue{
		ID:        "venue-1",
		Name:      "Seaside Cabin",
		Price:     100,
		MaxGuests: 4,
		Owner:     ptr.Ptr(holidaze.Owner{Name: owner}),
	}
}

func validRequest() *models.VenueRequest {
	return &models.VenueRequest{Name: "Seaside Cabin", Price: 100, MaxGuests: 4}
}

func TestList_EmptyQueryUsesListEndpoint(t *testing.T) {
	client := &fakeVenueClient{venues: []holidaze.Venue{{ID: "venue-1"}}}
	svc := NewService(client, nopLogger{})

	resp, err := svc.List(context.Background(), "   ")

	require.NoError(t, err)
	assert.Len(t, resp.Venues, 1)
	assert.Equal(t, 1, client.listCalls)
	assert.Equal(t, 0, client.searchCalls)
}

func TestList_QueryUsesSearchEndpoint(t *testing.T) {
	client := &fakeVenueClient{venues: []holidaze.Venue{{ID: "venue-1"}}}
	svc := NewService(client, nopLogger{})

	_, err := svc.List(context.Background(), "cabin")

	require.NoError(t, err)
	assert.Equal(t, 1, client.searchCalls)
	assert.Equal(t, "cabin", client.searchQuery)
}

func TestGetByID_NotFound(t *testing.T) {
	client := &fakeVenueClient{getErr: holidaze.ErrVenueNotFound}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreate_RequiresManager(t *testing.T) {
	svc := NewService(&fakeVenueClient{}, nopLogger{})

	_, err := svc.Create(context.Background(), customerSession(), validRequest())

	assert.ErrorIs(t, err, ErrNotVenueManager)
}

func TestCreate_Manager(t *testing.T) {
	svc := NewService(&fakeVenueClient{}, nopLogger{})

	resp, err := svc.Create(context.Background(), managerSession(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "venue-new", resp.ID)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeVenueClient{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.VenueRequest
	}{
		{"empty name", &models.VenueRequest{Price: 100, MaxGuests: 4}},
		{"negative price", &models.VenueRequest{Name: "Cabin", Price: -1, MaxGuests: 4}},
		{"zero guests", &models.VenueRequest{Name: "Cabin", Price: 100, MaxGuests: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), managerSession(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_OwnerOnly(t *testing.T) {
	client := &fakeVenueClient{venue: ownedVenue("someone-else")}
	svc := NewService(client, nopLogger{})

	_, err := svc.Update(context.Background(), managerSession(), "venue-1", validRequest())

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, client.updated)
}

func TestUpdate_Owner(t *testing.T) {
	client := &fakeVenueClient{venue: ownedVenue("alice")}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Update(context.Background(), managerSession(), "venue-1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, "venue-1", resp.ID)
	require.NotNil(t, client.updated)
}

func TestDelete_OwnerOnly(t *testing.T) {
	client := &fakeVenueClient{venue: ownedVenue("someone-else")}
	svc := NewService(client, nopLogger{})

	err := svc.Delete(context.Background(), managerSession(), "venue-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, client.deleted)
}

func TestDelete_Owner(t *testing.T) {
	client := &fakeVenueClient{venue: ownedVenue("alice")}
	svc := NewService(client, nopLogger{})

	err := svc.Delete(context.Background(), managerSession(), "venue-1")

	require.NoError(t, err)
	assert.Equal(t, "venue-1", client.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	client := &fakeVenueClient{getErr: holidaze.ErrVenueNotFound}
	svc := NewService(client, nopLogger{})

	err := svc.Delete(context.Background(), managerSession(), "missing")

	assert.ErrorIs(t, err, ErrVenueNotFound)
}
