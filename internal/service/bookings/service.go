package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	"github.com/m04kA/HLD-BookingGateway/internal/service/bookings/models"
)

// Service сервис бронирований: история профиля и отмена
type Service struct {
	client BookingClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListByProfile возвращает бронирования профиля.
// Пользователь может видеть только собственную историю.
func (s *Service) ListByProfile(ctx context.Context, session *domain.Session, profileName string) (*models.BookingListResponse, error) {
	if !session.Owns(profileName) {
		s.logger.Warn("ListByProfile: name=%s requested bookings of name=%s", session.Name, profileName)
		return nil, ErrAccessDenied
	}

	s.logger.Info("ListByProfile: fetching bookings for name=%s", profileName)

	upstream, err := s.client.GetProfileBookings(ctx, session.AccessToken, profileName)
	if err != nil {
		if errors.Is(err, holidaze.ErrProfileNotFound) {
			s.logger.Warn("ListByProfile: profile name=%s not found", profileName)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ListByProfile: upstream error for name=%s: %v", profileName, err)
		return nil, fmt.Errorf("%w: ListByProfile - upstream error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(upstream))}
	for i := range upstream {
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(upstream[i].ToDomain()))
	}

	s.logger.Info("ListByProfile: returned %d bookings for name=%s", len(resp.Bookings), profileName)
	return resp, nil
}

// Cancel отменяет бронирование по ID.
// После отмены даты снова свободны: следующий запрос доступности увидит это,
// потому что набор заблокированных дат всегда выводится из свежего списка.
func (s *Service) Cancel(ctx context.Context, session *domain.Session, bookingID string) error {
	if bookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%s for name=%s", bookingID, session.Name)

	if err := s.client.CancelBooking(ctx, session.AccessToken, bookingID); err != nil {
		switch {
		case errors.Is(err, holidaze.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		case errors.Is(err, holidaze.ErrForbidden):
			s.logger.Warn("Cancel: access denied for booking id=%s, name=%s", bookingID, session.Name)
			return ErrAccessDenied
		}
		s.logger.Error("Cancel: upstream error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	return nil
}
