package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	bookingModels "github.com/m04kA/HLD-BookingGateway/internal/service/bookings/models"
	"github.com/m04kA/HLD-BookingGateway/internal/service/profiles/models"
	venueModels "github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

// Service сервис профилей: просмотр собственного профиля и обновление аватара
type Service struct {
	client ProfileClient
	logger Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(client ProfileClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Get возвращает профиль вместе с бронированиями и площадками.
// Пользователь может видеть только собственный профиль.
func (s *Service) Get(ctx context.Context, session *domain.Session, profileName string) (*models.ProfileResponse, error) {
	if !session.Owns(profileName) {
		s.logger.Warn("Get: name=%s requested profile of name=%s", session.Name, profileName)
		return nil, ErrAccessDenied
	}

	profile, err := s.client.GetProfile(ctx, session.AccessToken, profileName)
	if err != nil {
		if errors.Is(err, holidaze.ErrProfileNotFound) {
			s.logger.Warn("Get: profile name=%s not found", profileName)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Get: upstream error for name=%s: %v", profileName, err)
		return nil, fmt.Errorf("%w: Get - upstream error: %v", ErrInternal, err)
	}

	return fromUpstreamProfile(profile), nil
}

// UpdateAvatar обновляет аватар собственного профиля
func (s *Service) UpdateAvatar(ctx context.Context, session *domain.Session, profileName string, req *models.UpdateAvatarRequest) (*models.ProfileResponse, error) {
	if !session.Owns(profileName) {
		s.logger.Warn("UpdateAvatar: name=%s tried to update avatar of name=%s", session.Name, profileName)
		return nil, ErrAccessDenied
	}

	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: avatar url is required", ErrInvalidInput)
	}

	alt := req.Alt
	if alt == "" {
		alt = fmt.Sprintf("%s's profile picture", profileName)
	}

	profile, err := s.client.UpdateAvatar(ctx, session.AccessToken, profileName, holidaze.Media{
		URL: req.URL,
		Alt: alt,
	})
	if err != nil {
		switch {
		case errors.Is(err, holidaze.ErrProfileNotFound):
			return nil, ErrProfileNotFound
		case errors.Is(err, holidaze.ErrValidation):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("UpdateAvatar: upstream error for name=%s: %v", profileName, err)
		return nil, fmt.Errorf("%w: UpdateAvatar - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvatar: avatar updated for name=%s", profileName)
	return fromUpstreamProfile(profile), nil
}

func fromUpstreamProfile(p *holidaze.Profile) *models.ProfileResponse {
	resp := &models.ProfileResponse{
		Name:         p.Name,
		Email:        p.Email,
		VenueManager: p.VenueManager,
	}
	if p.Avatar != nil {
		resp.AvatarURL = p.Avatar.URL
		resp.AvatarAlt = p.Avatar.Alt
	}
	for i := range p.Venues {
		resp.Venues = append(resp.Venues, *venueModels.FromDomainVenue(p.Venues[i].ToDomain()))
	}
	for i := range p.Bookings {
		resp.Bookings = append(resp.Bookings, *bookingModels.FromDomainBooking(p.Bookings[i].ToDomain()))
	}
	return resp
}
