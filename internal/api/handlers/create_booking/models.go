package create_booking

import (
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	createBooking "github.com/m04kA/HLD-BookingGateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID  string `json:"venueId"`
	CheckIn  string `json:"checkIn"`  // "2026-06-05"
	CheckOut string `json:"checkOut"` // "2026-06-08"
	Guests   int    `json:"guests"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	VenueID       string  `json:"venueId"`
	VenueName     string  `json:"venueName,omitempty"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Total         float64 `json:"total"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Отсутствующие даты остаются нулевыми и отклоняются движком как
// incomplete_range; некорректный формат считается ошибкой парсинга.
func (r *CreateBookingRequest) ToUseCaseRequest(session *domain.Session) (*createBooking.Request, error) {
	req := &createBooking.Request{
		Session: session,
		VenueID: r.VenueID,
		Guests:  r.Guests,
	}

	var err error
	if r.CheckIn != "" {
		req.CheckIn, err = time.Parse(domain.DateFormat, r.CheckIn)
		if err != nil {
			return nil, err
		}
	}
	if r.CheckOut != "" {
		req.CheckOut, err = time.Parse(domain.DateFormat, r.CheckOut)
		if err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:            resp.BookingID,
		VenueID:       resp.VenueID,
		VenueName:     resp.VenueName,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Guests:        resp.Guests,
		Nights:        resp.Nights,
		PricePerNight: resp.PricePerNight,
		Total:         resp.Total,
	}
	if !resp.CreatedAt.IsZero() {
		out.CreatedAt = resp.CreatedAt.Format(time.RFC3339)
	}
	return out
}
