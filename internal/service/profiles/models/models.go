package models

import (
	bookingModels "github.com/m04kA/HLD-BookingGateway/internal/service/bookings/models"
	venueModels "github.com/m04kA/HLD-BookingGateway/internal/service/venues/models"
)

// ProfileResponse представление профиля вместе с бронированиями и площадками
type ProfileResponse struct {
	Name         string
	Email        string
	VenueManager bool
	AvatarURL    string
	AvatarAlt    string
	Venues       []venueModels.VenueResponse
	Bookings     []bookingModels.BookingResponse
}

// UpdateAvatarRequest данные обновления аватара
type UpdateAvatarRequest struct {
	URL string
	Alt string
}
