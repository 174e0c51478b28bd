package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	sessionRepo "github.com/m04kA/HLD-BookingGateway/internal/infra/storage/session"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	"github.com/m04kA/HLD-BookingGateway/internal/service/session/models"
)

const minPasswordLength = 8

// Service сервис сессий: логин/логаут/регистрация и выдача сессии по токену.
// Учетными данными владеет upstream API; сервис хранит только выданный
// access-токен внутри серверной сессии.
type Service struct {
	repo       SessionRepository
	authClient AuthClient
	tokens     TokenGenerator
	logger     Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(repo SessionRepository, authClient AuthClient, logger Logger) *Service {
	return &Service{
		repo:       repo,
		authClient: authClient,
		tokens:     &randomTokenGenerator{},
		logger:     logger,
	}
}

// randomTokenGenerator криптослучайный генератор токенов сессий
type randomTokenGenerator struct{}

// Generate возвращает 64 hex-символа из 32 случайных байт
func (g *randomTokenGenerator) Generate() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// Register регистрирует новый профиль в upstream API
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Register: name=%s, venueManager=%t", req.Name, req.VenueManager)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	profile, err := s.authClient.Register(ctx, holidaze.RegisterRequest{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		VenueManager: req.VenueManager,
	})
	if err != nil {
		if errors.Is(err, holidaze.ErrValidation) {
			s.logger.Warn("Register: upstream rejected registration for name=%s: %v", req.Name, err)
			return nil, fmt.Errorf("%w: %v", ErrRegistrationRejected, err)
		}
		s.logger.Error("Register: upstream error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Register - upstream error: %v", ErrInternal, err)
	}

	resp := &models.ProfileResponse{
		Name:         profile.Name,
		Email:        profile.Email,
		VenueManager: profile.VenueManager,
	}
	if profile.Avatar != nil {
		resp.AvatarURL = profile.Avatar.URL
		resp.AvatarAlt = profile.Avatar.Alt
	}

	s.logger.Info("Register: profile name=%s registered", profile.Name)
	return resp, nil
}

// Login выполняет логин через upstream API и создает серверную сессию.
// Прежние сессии профиля удаляются, чтобы не копить устаревшие токены.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	if err := validateLogin(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, err
	}

	user, err := s.authClient.Login(ctx, holidaze.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, holidaze.ErrInvalidCredentials) || errors.Is(err, holidaze.ErrValidation) {
			s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: upstream error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - upstream error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("Login: failed to generate session token: %v", err)
		return nil, fmt.Errorf("%w: Login - token generation: %v", ErrInternal, err)
	}

	if err := s.repo.DeleteByProfile(ctx, user.Name); err != nil {
		s.logger.Error("Login: failed to clear previous sessions for name=%s: %v", user.Name, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	session := &domain.Session{
		Token:        token,
		AccessToken:  user.AccessToken,
		Name:         user.Name,
		Email:        user.Email,
		VenueManager: user.VenueManager,
	}
	if user.Avatar != nil {
		session.AvatarURL = user.Avatar.URL
		session.AvatarAlt = user.Avatar.Alt
	}

	created, err := s.repo.Create(ctx, session)
	if err != nil {
		s.logger.Error("Login: failed to persist session for name=%s: %v", user.Name, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session created for name=%s, venueManager=%t", user.Name, user.VenueManager)
	return models.FromDomainSession(created), nil
}

// Logout удаляет сессию по токену
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.repo.Delete(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session removed")
	return nil
}

// GetByToken возвращает сессию по токену шлюза.
// Используется middleware аутентификации на каждом защищенном запросе.
func (s *Service) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}

	return session, nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

func validateLogin(req *models.LoginRequest) error {
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
