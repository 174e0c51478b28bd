package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// UseCase use case для создания бронирования.
// Локальная проверка доступности работает поверх потенциально устаревшего
// списка бронирований; финальное слово за upstream API.
type UseCase struct {
	venueClient   VenueClient
	bookingClient BookingClient
	guard         SubmissionGuard
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueClient VenueClient,
	bookingClient BookingClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueClient:   venueClient,
		bookingClient: bookingClient,
		guard:         NewInFlightGuard(),
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: profile=%s, venue=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.Session.Name, req.VenueID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 2. Захватываем мьютекс отправки для этого выбора
	key := req.submissionKey()
	if err := uc.guard.Begin(key); err != nil {
		uc.logger.Warn("CreateBooking: submission already in flight for key=%s", key)
		return nil, err
	}

	confirmed := false
	defer func() { uc.guard.Finish(key, confirmed) }()

	// 3. Получаем площадку со свежими бронированиями
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidaze.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	domainVenue := venue.ToDomain()

	// 4. Валидируем выбор: полнота диапазона, затем гости, затем конфликты дат
	selection := domain.StaySelection{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	reason := domain.ValidateSelection(selection, domainVenue.Bookings, domain.StayConstraints{
		MinNights: domain.DefaultMinNights,
		MaxGuests: domainVenue.MaxGuests,
	}, req.Guests)
	if !reason.IsValid() {
		uc.logger.Warn("CreateBooking: selection rejected: venue=%s, reason=%s", req.VenueID, reason)
		return nil, mapRejection(reason)
	}

	// 5. Отправляем бронирование в upstream API
	booking, err := uc.bookingClient.CreateBooking(ctx, req.Session.AccessToken, holidaze.BookingPayload{
		DateFrom: req.CheckIn.UTC().Format(time.RFC3339),
		DateTo:   req.CheckOut.UTC().Format(time.RFC3339),
		Guests:   req.Guests,
		VenueID:  req.VenueID,
	})
	if err != nil {
		switch {
		case errors.Is(err, holidaze.ErrConflict):
			// Гонка: конкурирующее бронирование закоммитилось между нашей
			// проверкой и отправкой. Ответ сервера авторитетен.
			uc.logger.Warn("CreateBooking: upstream conflict for venue=%s: %v", req.VenueID, err)
			return nil, ErrDateConflict
		case errors.Is(err, holidaze.ErrValidation):
			uc.logger.Warn("CreateBooking: upstream rejected booking for venue=%s: %v", req.VenueID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, holidaze.ErrUnauthorized):
			uc.logger.Warn("CreateBooking: unauthorized for profile=%s", req.Session.Name)
			return nil, ErrUnauthorized
		case errors.Is(err, holidaze.ErrVenueNotFound):
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to submit booking for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
	}
	confirmed = true

	// 6. Формируем ответ с котировкой
	quote := domain.QuoteStay(selection, domainVenue.PricePerNight)

	uc.logger.Info("CreateBooking: booking id=%s confirmed: venue=%s, nights=%d, total=%.2f",
		booking.ID, req.VenueID, quote.Nights, quote.Total)

	return &Response{
		BookingID:     booking.ID,
		VenueID:       domainVenue.ID,
		VenueName:     domainVenue.Name,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		Nights:        quote.Nights,
		Total:         quote.Total,
		PricePerNight: domainVenue.PricePerNight,
		CreatedAt:     booking.Created,
	}, nil
}
