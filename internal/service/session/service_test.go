package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	sessionRepo "github.com/m04kA/HLD-BookingGateway/internal/infra/storage/session"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	"github.com/m04kA/HLD-BookingGateway/internal/service/session/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	sessions map[string]*domain.Session
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeRepo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	f.sessions[s.Token] = s
	return s, nil
}

func (f *fakeRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeRepo) Delete(ctx context.Context, token string) error {
	if _, ok := f.sessions[token]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(f.sessions, token)
	return nil
}

func (f *fakeRepo) DeleteByProfile(ctx context.Context, profileName string) error {
	for token, s := range f.sessions {
		if s.Name == profileName {
			delete(f.sessions, token)
		}
	}
	return nil
}

type fakeAuthClient struct {
	user        *holidaze.AuthUser
	profile     *holidaze.Profile
	loginErr    error
	registerErr error
}

func (f *fakeAuthClient) Register(ctx context.Context, req holidaze.RegisterRequest) (*holidaze.Profile, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.profile, nil
}

func (f *fakeAuthClient) Login(ctx context.Context, req holidaze.LoginRequest) (*holidaze.AuthUser, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func testAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		user: &holidaze.AuthUser{
			Name:         "alice",
			Email:        "alice@stud.noroff.no",
			VenueManager: true,
			AccessToken:  "upstream-token",
		},
		profile: &holidaze.Profile{
			Name:         "alice",
			Email:        "alice@stud.noroff.no",
			VenueManager: true,
		},
	}
}

func TestLogin_CreatesSession(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testAuthClient(), nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@stud.noroff.no",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Name)
	assert.True(t, resp.VenueManager)

	stored, err := svc.GetByToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", stored.AccessToken)
}

func TestLogin_ReplacesPreviousSessions(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testAuthClient(), nopLogger{})

	first, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@stud.noroff.no",
		Password: "secret123",
	})
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@stud.noroff.no",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	_, err = svc.GetByToken(context.Background(), first.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetByToken(context.Background(), second.Token)
	assert.NoError(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := testAuthClient()
	auth.loginErr = holidaze.ErrInvalidCredentials
	svc := NewService(newFakeRepo(), auth, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@stud.noroff.no",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), testAuthClient(), nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "not-an-email", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "alice@stud.noroff.no"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeRepo(), testAuthClient(), nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:         "alice",
		Email:        "alice@stud.noroff.no",
		Password:     "secret123",
		VenueManager: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Name)
	assert.True(t, resp.VenueManager)
}

func TestRegister_UpstreamRejection(t *testing.T) {
	auth := testAuthClient()
	auth.registerErr = holidaze.ErrValidation
	svc := NewService(newFakeRepo(), auth, nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "alice",
		Email:    "alice@stud.noroff.no",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrRegistrationRejected)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newFakeRepo(), testAuthClient(), nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "alice",
		Email:    "alice@stud.noroff.no",
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogout(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testAuthClient(), nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@stud.noroff.no",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = svc.GetByToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Logout(context.Background(), resp.Token), ErrSessionNotFound)
}

func TestGetByToken_EmptyToken(t *testing.T) {
	svc := NewService(newFakeRepo(), testAuthClient(), nopLogger{})

	_, err := svc.GetByToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionResponse_HidesAccessToken(t *testing.T) {
	resp := models.FromDomainSession(&domain.Session{
		Token:       "gw-token",
		AccessToken: "upstream-token",
		Name:        "alice",
	})

	assert.Equal(t, "gw-token", resp.Token)
	// Access-токен upstream наружу не отдается
	assert.NotContains(t, []string{resp.Token, resp.Name, resp.Email}, "upstream-token")
}
