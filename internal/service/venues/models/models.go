package models

import (
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
	"github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
)

// MediaModel изображение площадки
type MediaModel struct {
	URL string
	Alt string
}

// MetaModel удобства площадки
type MetaModel struct {
	WiFi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

// LocationModel адрес площадки
type LocationModel struct {
	Address string
	City    string
	Zip     string
	Country string
}

// VenueRequest данные создания или обновления площадки
type VenueRequest struct {
	Name        string
	Description string
	Media       []MediaModel
	Price       float64
	MaxGuests   int
	Meta        *MetaModel
	Location    *LocationModel
}

// ToPayload конвертирует запрос сервиса в payload upstream API
func (r *VenueRequest) ToPayload() holidaze.VenuePayload {
	payload := holidaze.VenuePayload{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		MaxGuests:   r.MaxGuests,
	}
	for _, m := range r.Media {
		payload.Media = append(payload.Media, holidaze.Media{URL: m.URL, Alt: m.Alt})
	}
	if r.Meta != nil {
		payload.Meta = &holidaze.VenueMeta{
			WiFi:      r.Meta.WiFi,
			Parking:   r.Meta.Parking,
			Breakfast: r.Meta.Breakfast,
			Pets:      r.Meta.Pets,
		}
	}
	if r.Location != nil {
		payload.Location = &holidaze.VenueLocation{
			Address: r.Location.Address,
			City:    r.Location.City,
			Zip:     r.Location.Zip,
			Country: r.Location.Country,
		}
	}
	return payload
}

// VenueResponse представление площадки
type VenueResponse struct {
	ID          string
	Name        string
	Description string
	Media       []MediaModel
	Price       float64
	MaxGuests   int
	Rating      float64
	Meta        MetaModel
	Location    LocationModel
	OwnerName   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VenueListResponse список площадок
type VenueListResponse struct {
	Venues []VenueResponse
}

// FromDomainVenue конвертирует доменную площадку в ответ сервиса
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	resp := &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.PricePerNight,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta: MetaModel{
			WiFi:      v.Meta.WiFi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: LocationModel{
			Address: v.Location.Address,
			City:    v.Location.City,
			Zip:     v.Location.Zip,
			Country: v.Location.Country,
		},
		OwnerName: v.OwnerName,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	for _, m := range v.Media {
		resp.Media = append(resp.Media, MediaModel{URL: m.URL, Alt: m.Alt})
	}
	return resp
}
