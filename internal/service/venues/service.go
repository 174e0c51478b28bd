package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	"github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

// Service сервис площадок: просмотр для всех, CRUD для venue manager
type Service struct {
	client VenueClient
	logger Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(client VenueClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List возвращает список площадок, опционально отфильтрованный поисковым запросом
func (s *Service) List(ctx context.Context, query string) (*models.VenueListResponse, error) {
	var (
		upstream []holidaze.Venue
		err      error
	)

	query = strings.TrimSpace(query)
	if query != "" {
		s.logger.Info("List: searching venues q=%q", query)
		upstream, err = s.client.SearchVenues(ctx, query)
	} else {
		s.logger.Info("List: fetching all venues")
		upstream, err = s.client.ListVenues(ctx)
	}
	if err != nil {
		s.logger.Error("List: upstream error: %v", err)
		return nil, fmt.Errorf("%w: List - upstream error: %v", ErrInternal, err)
	}

	resp := &models.VenueListResponse{Venues: make([]models.VenueResponse, 0, len(upstream))}
	for i := range upstream {
		resp.Venues = append(resp.Venues, *models.FromDomainVenue(upstream[i].ToDomain()))
	}

	s.logger.Info("List: returned %d venues", len(resp.Venues))
	return resp, nil
}

// GetByID возвращает площадку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.VenueResponse, error) {
	venue, err := s.client.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, holidaze.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%s not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: upstream error for venue id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - upstream error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue.ToDomain()), nil
}

// Create создает новую площадку от имени venue manager
func (s *Service) Create(ctx context.Context, session *domain.Session, req *models.VenueRequest) (*models.VenueResponse, error) {
	if !session.CanManageVenues() {
		s.logger.Warn("Create: profile name=%s is not a venue manager", session.Name)
		return nil, ErrNotVenueManager
	}

	if err := validateVenueRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	venue, err := s.client.CreateVenue(ctx, session.AccessToken, req.ToPayload())
	if err != nil {
		if errors.Is(err, holidaze.ErrValidation) {
			s.logger.Warn("Create: upstream rejected venue name=%s: %v", req.Name, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Create: upstream error for venue name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: venue id=%s created by name=%s", venue.ID, session.Name)
	return models.FromDomainVenue(venue.ToDomain()), nil
}

// Update обновляет площадку. Разрешено только владельцу.
func (s *Service) Update(ctx context.Context, session *domain.Session, id string, req *models.VenueRequest) (*models.VenueResponse, error) {
	if !session.CanManageVenues() {
		s.logger.Warn("Update: profile name=%s is not a venue manager", session.Name)
		return nil, ErrNotVenueManager
	}

	if err := validateVenueRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for venue id=%s: %v", id, err)
		return nil, err
	}

	if err := s.checkOwnership(ctx, session, id); err != nil {
		return nil, err
	}

	venue, err := s.client.UpdateVenue(ctx, session.AccessToken, id, req.ToPayload())
	if err != nil {
		switch {
		case errors.Is(err, holidaze.ErrVenueNotFound):
			return nil, ErrVenueNotFound
		case errors.Is(err, holidaze.ErrForbidden):
			return nil, ErrAccessDenied
		case errors.Is(err, holidaze.ErrValidation):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Update: upstream error for venue id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: venue id=%s updated by name=%s", id, session.Name)
	return models.FromDomainVenue(venue.ToDomain()), nil
}

// Delete удаляет площадку. Разрешено только владельцу.
func (s *Service) Delete(ctx context.Context, session *domain.Session, id string) error {
	if !session.CanManageVenues() {
		s.logger.Warn("Delete: profile name=%s is not a venue manager", session.Name)
		return ErrNotVenueManager
	}

	if err := s.checkOwnership(ctx, session, id); err != nil {
		return err
	}

	if err := s.client.DeleteVenue(ctx, session.AccessToken, id); err != nil {
		switch {
		case errors.Is(err, holidaze.ErrVenueNotFound):
			return ErrVenueNotFound
		case errors.Is(err, holidaze.ErrForbidden):
			return ErrAccessDenied
		}
		s.logger.Error("Delete: upstream error for venue id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: venue id=%s deleted by name=%s", id, session.Name)
	return nil
}

// checkOwnership проверяет, что площадка принадлежит профилю сессии.
// Upstream проверяет права повторно; локальная проверка дает понятный 403
// до мутирующего запроса.
func (s *Service) checkOwnership(ctx context.Context, session *domain.Session, id string) error {
	venue, err := s.client.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, holidaze.ErrVenueNotFound) {
			s.logger.Warn("checkOwnership: venue id=%s not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("checkOwnership: upstream error for venue id=%s: %v", id, err)
		return fmt.Errorf("%w: checkOwnership - upstream error: %v", ErrInternal, err)
	}

	if !venue.ToDomain().IsManagedBy(session.Name) {
		s.logger.Warn("checkOwnership: venue id=%s is not managed by name=%s", id, session.Name)
		return ErrAccessDenied
	}

	return nil
}

func validateVenueRequest(req *models.VenueRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxVenueNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxVenueNameLen)
	}
	if len(req.Description) > domain.MaxVenueDescLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxVenueDescLen)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if req.MaxGuests < domain.MinVenueGuests || req.MaxGuests > domain.MaxVenueGuests {
		return fmt.Errorf("%w: maxGuests must be between %d and %d",
			ErrInvalidInput, domain.MinVenueGuests, domain.MaxVenueGuests)
	}
	return nil
}
