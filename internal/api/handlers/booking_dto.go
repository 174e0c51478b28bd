package handlers

import (
	"time"

	bookingModels "github.com/m04kA/HLD-BookingGateway/internal/service/bookings/models"
)

// BookingDTO HTTP представление бронирования
type BookingDTO struct {
	ID        string  `json:"id"`
	VenueID   string  `json:"venueId"`
	VenueName string  `json:"venueName,omitempty"`
	DateFrom  string  `json:"dateFrom"`
	DateTo    string  `json:"dateTo"`
	Guests    int     `json:"guests"`
	Nights    int     `json:"nights"`
	Total     float64 `json:"total"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// BookingDTOFromService конвертирует ответ сервиса бронирований в HTTP DTO
func BookingDTOFromService(b *bookingModels.BookingResponse) *BookingDTO {
	dto := &BookingDTO{
		ID:        b.ID,
		VenueID:   b.VenueID,
		VenueName: b.VenueName,
		DateFrom:  b.DateFrom.Format(time.RFC3339),
		DateTo:    b.DateTo.Format(time.RFC3339),
		Guests:    b.Guests,
		Nights:    b.Nights,
		Total:     b.Total,
	}
	if !b.CreatedAt.IsZero() {
		dto.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
