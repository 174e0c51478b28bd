package get_availability

import (
	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	getAvailability "github.com/m04kA/HLD-BookingGateway/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VenueID       string   `json:"venueId"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxGuests     int      `json:"maxGuests"`
	BlockedDates  []string `json:"blockedDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	blocked := make([]string, len(resp.BlockedDates))
	for i, d := range resp.BlockedDates {
		blocked[i] = d.Format(domain.DateFormat)
	}

	return &AvailabilityResponse{
		VenueID:       resp.VenueID,
		PricePerNight: resp.PricePerNight,
		MaxGuests:     resp.MaxGuests,
		BlockedDates:  blocked,
	}
}
