package domain

import "time"

// Session серверная сессия пользователя шлюза.
// Токен сессии выдается шлюзом, а access-токен upstream API хранится
// рядом и наружу не отдается.
type Session struct {
	Token        string // токен сессии шлюза (opaque)
	AccessToken  string // Bearer-токен upstream API
	Name         string
	Email        string
	VenueManager bool
	AvatarURL    string
	AvatarAlt    string
	CreatedAt    time.Time
}

// CanManageVenues policy predicate: только venue manager может
// создавать, изменять и удалять площадки
func (s *Session) CanManageVenues() bool {
	return s != nil && s.VenueManager
}

// Owns returns true if the session belongs to the given profile
func (s *Session) Owns(profileName string) bool {
	return s != nil && s.Name == profileName
}
