package register

import "github.com/m04kA/HLD-BookingGateway/internal/service/session/models"

// RegisterRequestDTO тело запроса регистрации
type RegisterRequestDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// ToServiceRequest конвертирует DTO в запрос сервиса
func (d *RegisterRequestDTO) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:         d.Name,
		Email:        d.Email,
		Password:     d.Password,
		VenueManager: d.VenueManager,
	}
}

// ProfileDTO публичное представление профиля в ответе
type ProfileDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	VenueManager bool   `json:"venueManager"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	AvatarAlt    string `json:"avatarAlt,omitempty"`
}

// ProfileDTOFromService конвертирует ответ сервиса в DTO
func ProfileDTOFromService(p *models.ProfileResponse) *ProfileDTO {
	return &ProfileDTO{
		Name:         p.Name,
		Email:        p.Email,
		VenueManager: p.VenueManager,
		AvatarURL:    p.AvatarURL,
		AvatarAlt:    p.AvatarAlt,
	}
}
