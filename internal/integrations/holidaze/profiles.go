package holidaze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	opGetProfile         = "profiles.get"
	opGetProfileBookings = "profiles.bookings"
	opUpdateAvatar       = "profiles.update_avatar"
)

// GetProfile получает профиль вместе с бронированиями и площадками
func (c *Client) GetProfile(ctx context.Context, token, name string) (*Profile, error) {
	profile, err := do[Profile](ctx, c, call{
		operation:   opGetProfile,
		method:      http.MethodGet,
		path:        fmt.Sprintf("/holidaze/profiles/%s?_bookings=true&_venues=true", url.PathEscape(name)),
		token:       token,
		notFoundErr: ErrProfileNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileBookings получает бронирования профиля вместе с площадками
func (c *Client) GetProfileBookings(ctx context.Context, token, name string) ([]Booking, error) {
	return do[[]Booking](ctx, c, call{
		operation:   opGetProfileBookings,
		method:      http.MethodGet,
		path:        fmt.Sprintf("/holidaze/profiles/%s/bookings?_venue=true", url.PathEscape(name)),
		token:       token,
		notFoundErr: ErrProfileNotFound,
	})
}

// UpdateAvatar обновляет аватар профиля
func (c *Client) UpdateAvatar(ctx context.Context, token, name string, avatar Media) (*Profile, error) {
	c.log.Info("Updating avatar for profile name=%s", name)

	profile, err := do[Profile](ctx, c, call{
		operation:   opUpdateAvatar,
		method:      http.MethodPut,
		path:        "/holidaze/profiles/" + url.PathEscape(name),
		token:       token,
		body:        AvatarPayload{Avatar: avatar},
		notFoundErr: ErrProfileNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
