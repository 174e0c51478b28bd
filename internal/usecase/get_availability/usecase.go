package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// UseCase use case для получения занятых дат площадки
type UseCase struct {
	venueClient VenueClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venueClient VenueClient, logger Logger) *UseCase {
	return &UseCase{
		venueClient: venueClient,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятых дат.
// Список бронирований запрашивается заново при каждом вызове: набор
// заблокированных дат производное значение и не кэшируется между вызовами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: venue=%s", req.VenueID)

	// 1. Валидация входных данных
	if req.VenueID == "" {
		uc.logger.Warn("GetAvailability: empty venue id")
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	// 2. Получаем площадку со свежими бронированиями
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidaze.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailability: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailability: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Разворачиваем интервалы бронирований в набор занятых дат
	domainVenue := venue.ToDomain()
	blocked := domain.DeriveBlockedDates(domainVenue.Bookings)

	uc.logger.Info("GetAvailability: venue=%s has %d blocked dates from %d bookings",
		req.VenueID, len(blocked), len(domainVenue.Bookings))

	return &Response{
		VenueID:       domainVenue.ID,
		PricePerNight: domainVenue.PricePerNight,
		MaxGuests:     domainVenue.MaxGuests,
		BlockedDates:  blocked.Days(),
	}, nil
}
