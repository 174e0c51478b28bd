package holidaze

import (
	"context"
	"net/http"
)

const (
	opRegister = "auth.register"
	opLogin    = "auth.login"
)

// Register регистрирует нового пользователя в upstream API
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	c.log.Info("Registering profile name=%s, venueManager=%t", req.Name, req.VenueManager)

	profile, err := do[Profile](ctx, c, call{
		operation: opRegister,
		method:    http.MethodPost,
		path:      "/auth/register",
		body:      req,
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Login выполняет логин и возвращает профиль вместе с access-токеном.
// Управление учетными данными полностью делегировано upstream API;
// шлюз только хранит выданный токен.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthUser, error) {
	c.log.Info("Logging in profile email=%s", req.Email)

	user, err := do[AuthUser](ctx, c, call{
		operation: opLogin,
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      req,
	})
	if err != nil {
		return nil, err
	}

	if user.AccessToken == "" {
		return nil, ErrInvalidResponse
	}

	return &user, nil
}
