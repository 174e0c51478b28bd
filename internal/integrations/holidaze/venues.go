package holidaze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	opListVenues   = "venues.list"
	opSearchVenues = "venues.search"
	opGetVenue     = "venues.get"
	opCreateVenue  = "venues.create"
	opUpdateVenue  = "venues.update"
	opDeleteVenue  = "venues.delete"
)

// ListVenues возвращает список площадок
func (c *Client) ListVenues(ctx context.Context) ([]Venue, error) {
	return do[[]Venue](ctx, c, call{
		operation: opListVenues,
		method:    http.MethodGet,
		path:      "/holidaze/venues",
	})
}

// SearchVenues возвращает площадки, подходящие под поисковый запрос
func (c *Client) SearchVenues(ctx context.Context, query string) ([]Venue, error) {
	return do[[]Venue](ctx, c, call{
		operation: opSearchVenues,
		method:    http.MethodGet,
		path:      "/holidaze/venues/search?q=" + url.QueryEscape(query),
	})
}

// GetVenue получает площадку по ID вместе с бронированиями и владельцем.
// Бронирования нужны свежими при каждом вызове: набор заблокированных дат
// выводится заново из актуального списка, а не из кэша.
func (c *Client) GetVenue(ctx context.Context, id string) (*Venue, error) {
	venue, err := do[Venue](ctx, c, call{
		operation:   opGetVenue,
		method:      http.MethodGet,
		path:        fmt.Sprintf("/holidaze/venues/%s?_bookings=true&_owner=true", url.PathEscape(id)),
		notFoundErr: ErrVenueNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// CreateVenue создает новую площадку от имени владельца токена
func (c *Client) CreateVenue(ctx context.Context, token string, payload VenuePayload) (*Venue, error) {
	c.log.Info("Creating venue name=%s, price=%.2f, maxGuests=%d", payload.Name, payload.Price, payload.MaxGuests)

	venue, err := do[Venue](ctx, c, call{
		operation: opCreateVenue,
		method:    http.MethodPost,
		path:      "/holidaze/venues",
		token:     token,
		body:      payload,
	})
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// UpdateVenue обновляет существующую площадку
func (c *Client) UpdateVenue(ctx context.Context, token, id string, payload VenuePayload) (*Venue, error) {
	c.log.Info("Updating venue id=%s", id)

	venue, err := do[Venue](ctx, c, call{
		operation:   opUpdateVenue,
		method:      http.MethodPut,
		path:        "/holidaze/venues/" + url.PathEscape(id),
		token:       token,
		body:        payload,
		notFoundErr: ErrVenueNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// DeleteVenue удаляет площадку
func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	c.log.Info("Deleting venue id=%s", id)

	_, err := do[struct{}](ctx, c, call{
		operation:   opDeleteVenue,
		method:      http.MethodDelete,
		path:        "/holidaze/venues/" + url.PathEscape(id),
		token:       token,
		notFoundErr: ErrVenueNotFound,
	})
	return err
}
