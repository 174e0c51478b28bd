package get_profile

import (
	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/service/profiles/models"
)

// ProfileDTO представление профиля вместе с бронированиями и площадками
type ProfileDTO struct {
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	VenueManager bool                  `json:"venueManager"`
	AvatarURL    string                `json:"avatarUrl,omitempty"`
	AvatarAlt    string                `json:"avatarAlt,omitempty"`
	Venues       []handlers.VenueDTO   `json:"venues"`
	Bookings     []handlers.BookingDTO `json:"bookings"`
}

// ProfileDTOFromService конвертирует ответ сервиса в DTO
func ProfileDTOFromService(p *models.ProfileResponse) *ProfileDTO {
	dto := &ProfileDTO{
		Name:         p.Name,
		Email:        p.Email,
		VenueManager: p.VenueManager,
		AvatarURL:    p.AvatarURL,
		AvatarAlt:    p.AvatarAlt,
		Venues:       make([]handlers.VenueDTO, 0, len(p.Venues)),
		Bookings:     make([]handlers.BookingDTO, 0, len(p.Bookings)),
	}
	for i := range p.Venues {
		dto.Venues = append(dto.Venues, *handlers.VenueDTOFromService(&p.Venues[i]))
	}
	for i := range p.Bookings {
		dto.Bookings = append(dto.Bookings, *handlers.BookingDTOFromService(&p.Bookings[i]))
	}
	return dto
}
