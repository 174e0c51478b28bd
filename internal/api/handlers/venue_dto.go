package handlers

import (
	"time"

	venueModels "github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

// MediaDTO изображение площадки
type MediaDTO struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// MetaDTO удобства площадки
type MetaDTO struct {
	WiFi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// LocationDTO адрес площадки
type LocationDTO struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// VenueDTO HTTP представление площадки
// Используется всеми обработчиками, возвращающими площадку
type VenueDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Media       []MediaDTO  `json:"media,omitempty"`
	Price       float64     `json:"price"`
	MaxGuests   int         `json:"maxGuests"`
	Rating      float64     `json:"rating"`
	Meta        MetaDTO     `json:"meta"`
	Location    LocationDTO `json:"location"`
	OwnerName   string      `json:"ownerName,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// VenueDTOFromService конвертирует ответ сервиса площадок в HTTP DTO
func VenueDTOFromService(v *venueModels.VenueResponse) *VenueDTO {
	dto := &VenueDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta: MetaDTO{
			WiFi:      v.Meta.WiFi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: LocationDTO{
			Address: v.Location.Address,
			City:    v.Location.City,
			Zip:     v.Location.Zip,
			Country: v.Location.Country,
		},
		OwnerName: v.OwnerName,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	if !v.UpdatedAt.IsZero() {
		dto.UpdatedAt = v.UpdatedAt.Format(time.RFC3339)
	}
	for _, m := range v.Media {
		dto.Media = append(dto.Media, MediaDTO{URL: m.URL, Alt: m.Alt})
	}
	return dto
}

// VenueRequestDTO HTTP тело создания/обновления площадки
type VenueRequestDTO struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Media       []MediaDTO   `json:"media,omitempty"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"maxGuests"`
	Meta        *MetaDTO     `json:"meta,omitempty"`
	Location    *LocationDTO `json:"location,omitempty"`
}

// ToServiceRequest конвертирует HTTP тело в модель сервиса площадок
func (r *VenueRequestDTO) ToServiceRequest() *venueModels.VenueRequest {
	req := &venueModels.VenueRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		MaxGuests:   r.MaxGuests,
	}
	for _, m := range r.Media {
		req.Media = append(req.Media, venueModels.MediaModel{URL: m.URL, Alt: m.Alt})
	}
	if r.Meta != nil {
		req.Meta = &venueModels.MetaModel{
			WiFi:      r.Meta.WiFi,
			Parking:   r.Meta.Parking,
			Breakfast: r.Meta.Breakfast,
			Pets:      r.Meta.Pets,
		}
	}
	if r.Location != nil {
		req.Location = &venueModels.LocationModel{
			Address: r.Location.Address,
			City:    r.Location.City,
			Zip:     r.Location.Zip,
			Country: r.Location.Country,
		}
	}
	return req
}
