package login

import "github.com/m04kA/HLD-BookingGateway/internal/service/session/models"

// LoginRequestDTO тело запроса логина
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует DTO в запрос сервиса
func (d *LoginRequestDTO) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Email:    d.Email,
		Password: d.Password,
	}
}

// SessionDTO представление созданной сессии в ответе.
// Токен шлюза клиент передает в Authorization: Bearer на защищенных запросах.
type SessionDTO struct {
	Token        string `json:"token"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	VenueManager bool   `json:"venueManager"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

// SessionDTOFromService конвертирует ответ сервиса в DTO
func SessionDTOFromService(s *models.SessionResponse) *SessionDTO {
	return &SessionDTO{
		Token:        s.Token,
		Name:         s.Name,
		Email:        s.Email,
		VenueManager: s.VenueManager,
		AvatarURL:    s.AvatarURL,
	}
}
