package quote_stay

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	quoteStay "github.com/m04kA/HLD-BookingGateway/internal/usecase/quote_stay"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VenueID       string  `json:"venueId"`
	PricePerNight float64 `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	Total         float64 `json:"total"`
	Valid         bool    `json:"valid"`
	Reason        string  `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		VenueID:       resp.VenueID,
		PricePerNight: resp.PricePerNight,
		Nights:        resp.Nights,
		Total:         resp.Total,
		Valid:         resp.Valid,
		Reason:        string(resp.Reason),
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Отсутствующие даты остаются нулевыми: их отклонит движок причиной
// incomplete_range, это не ошибка парсинга.
func ToUseCaseRequest(venueID, checkInStr, checkOutStr, guestsStr string) (*quoteStay.Request, error) {
	req := &quoteStay.Request{VenueID: venueID}

	var err error
	if checkInStr != "" {
		req.CheckIn, err = time.Parse(domain.DateFormat, checkInStr)
		if err != nil {
			return nil, fmt.Errorf("invalid checkIn: %w", err)
		}
	}
	if checkOutStr != "" {
		req.CheckOut, err = time.Parse(domain.DateFormat, checkOutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid checkOut: %w", err)
		}
	}

	if guestsStr != "" {
		req.Guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid guests: %w", err)
		}
	}

	return req, nil
}
