package quote_stay

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// UseCase use case для котировки пребывания: валидация выбранного диапазона
// против занятых дат и вычисление стоимости
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

// Execute выполняет use case котировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteStay: venue=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.VenueID, formatDate(req), formatDateOut(req), req.Guests)

	// 1. Валидация входных данных
	if req.VenueID == "" {
		uc.logger.Warn("QuoteStay: empty venue id")
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	// 2. Получаем площадку со свежими бронированиями
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidaze.ErrVenueNotFound) {
			uc.logger.Warn("QuoteStay: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("QuoteStay: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	domainVenue := venue.ToDomain()

	// 3. Валидируем выбор против существующих бронирований и ограничений площадки
	selection := domain.StaySelection{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	reason := domain.ValidateSelection(selection, domainVenue.Bookings, domain.StayConstraints{
		MinNights: domain.DefaultMinNights,
		MaxGuests: domainVenue.MaxGuests,
	}, req.Guests)

	// 4. Вычисляем котировку; для невалидного выбора она провизорная
	quote := domain.QuoteStay(selection, domainVenue.PricePerNight)

	uc.logger.Info("QuoteStay: venue=%s, nights=%d, total=%.2f, valid=%t, reason=%s",
		req.VenueID, quote.Nights, quote.Total, reason.IsValid(), reason)

	return &Response{
		VenueID:       domainVenue.ID,
		PricePerNight: domainVenue.PricePerNight,
		Nights:        quote.Nights,
		Total:         quote.Total,
		Valid:         reason.IsValid(),
		Reason:        reason,
	}, nil
}

func formatDate(req *Request) string {
	if req.CheckIn.IsZero() {
		return "<unset>"
	}
	return req.CheckIn.Format(domain.DateFormat)
}

func formatDateOut(req *Request) string {
	if req.CheckOut.IsZero() {
		return "<unset>"
	}
	return req.CheckOut.Format(domain.DateFormat)
}
