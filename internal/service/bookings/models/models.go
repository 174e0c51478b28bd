package models

import (
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// BookingResponse представление бронирования пользователя
type BookingResponse struct {
	ID        string
	VenueID   string
	VenueName string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
	Nights    int
	Total     float64
	CreatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса.
// Количество ночей и стоимость пересчитываются движком, а не читаются из
// сохраненных данных.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:        b.ID,
		VenueID:   b.VenueID,
		DateFrom:  b.Start,
		DateTo:    b.End,
		Guests:    b.Guests,
		Nights:    domain.Nights(b.Start, b.End),
		CreatedAt: b.Created,
	}
	if b.Venue != nil {
		resp.VenueName = b.Venue.Name
		resp.Total = domain.Total(resp.Nights, b.Venue.PricePerNight)
	}
	return resp
}
