package models

import "github.com/m04kA/HLD-BookingGateway/internal/domain"

// RegisterRequest данные регистрации нового профиля
type RegisterRequest struct {
	Name         string
	Email        string
	Password     string
	VenueManager bool
}

// LoginRequest учетные данные для логина
type LoginRequest struct {
	Email    string
	Password string
}

// ProfileResponse публичное представление профиля
type ProfileResponse struct {
	Name         string
	Email        string
	VenueManager bool
	AvatarURL    string
	AvatarAlt    string
}

// SessionResponse представление созданной сессии
type SessionResponse struct {
	Token        string
	Name         string
	Email        string
	VenueManager bool
	AvatarURL    string
}

// FromDomainSession конвертирует доменную сессию в ответ сервиса.
// Access-токен upstream наружу не отдается.
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		Token:        s.Token,
		Name:         s.Name,
		Email:        s.Email,
		VenueManager: s.VenueManager,
		AvatarURL:    s.AvatarURL,
	}
}
