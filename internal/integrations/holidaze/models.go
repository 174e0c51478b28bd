package holidaze

import (
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// envelope обертка ответов Noroff v2 API: полезная нагрузка лежит в поле data
type envelope[T any] struct {
	Data T `json:"data"`
}

// errorResponse модель ошибки Noroff v2 API
type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Status string `json:"status,omitempty"`
}

// message возвращает первое сообщение об ошибке, если оно есть
func (e *errorResponse) message() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return ""
}

// Media изображение площадки
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// VenueMeta удобства площадки
type VenueMeta struct {
	WiFi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// VenueLocation адрес площадки
type VenueLocation struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Owner владелец площадки
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Venue модель площадки из Holidaze API
type Venue struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Media       []Media       `json:"media"`
	Price       float64       `json:"price"`
	MaxGuests   int           `json:"maxGuests"`
	Rating      float64       `json:"rating"`
	Meta        VenueMeta     `json:"meta"`
	Location    VenueLocation `json:"location"`
	Owner       *Owner        `json:"owner,omitempty"`
	Bookings    []Booking     `json:"bookings,omitempty"`
	Created     time.Time     `json:"created"`
	Updated     time.Time     `json:"updated"`
}

// Booking модель бронирования из Holidaze API
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Venue    *Venue    `json:"venue,omitempty"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// Profile модель профиля из Holidaze API
type Profile struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       *Media    `json:"avatar,omitempty"`
	VenueManager bool      `json:"venueManager"`
	Venues       []Venue   `json:"venues,omitempty"`
	Bookings     []Booking `json:"bookings,omitempty"`
}

// AuthUser модель ответа на логин: профиль вместе с access-токеном
type AuthUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       *Media `json:"avatar,omitempty"`
	VenueManager bool   `json:"venueManager"`
	AccessToken  string `json:"accessToken"`
}

// RegisterRequest данные регистрации нового пользователя
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// LoginRequest учетные данные для логина
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VenuePayload данные создания/обновления площадки
type VenuePayload struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Media       []Media        `json:"media,omitempty"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests"`
	Meta        *VenueMeta     `json:"meta,omitempty"`
	Location    *VenueLocation `json:"location,omitempty"`
}

// BookingPayload данные создания бронирования
type BookingPayload struct {
	DateFrom string `json:"dateFrom"` // ISO-8601
	DateTo   string `json:"dateTo"`   // ISO-8601
	Guests   int    `json:"guests"`
	VenueID  string `json:"venueId"`
}

// AvatarPayload данные обновления аватара профиля
type AvatarPayload struct {
	Avatar Media `json:"avatar"`
}

// ToDomain конвертирует площадку API в доменную модель
func (v *Venue) ToDomain() *domain.Venue {
	venue := &domain.Venue{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		PricePerNight: v.Price,
		MaxGuests:     v.MaxGuests,
		Rating:        v.Rating,
		Meta: domain.VenueMeta{
			WiFi:      v.Meta.WiFi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: domain.VenueLocation{
			Address: v.Location.Address,
			City:    v.Location.City,
			Zip:     v.Location.Zip,
			Country: v.Location.Country,
		},
		CreatedAt: v.Created,
		UpdatedAt: v.Updated,
	}

	for _, m := range v.Media {
		venue.Media = append(venue.Media, domain.Media{URL: m.URL, Alt: m.Alt})
	}

	if v.Owner != nil {
		venue.OwnerName = v.Owner.Name
	}

	for _, b := range v.Bookings {
		venue.Bookings = append(venue.Bookings, domain.BookingInterval{
			ID:     b.ID,
			Start:  b.DateFrom,
			End:    b.DateTo,
			Guests: b.Guests,
			Status: domain.StatusConfirmed,
		})
	}

	return venue
}

// ToDomain конвертирует бронирование API в доменную модель
func (b *Booking) ToDomain() *domain.Booking {
	booking := &domain.Booking{
		ID:      b.ID,
		Start:   b.DateFrom,
		End:     b.DateTo,
		Guests:  b.Guests,
		Status:  domain.StatusConfirmed,
		Created: b.Created,
		Updated: b.Updated,
	}
	if b.Venue != nil {
		booking.VenueID = b.Venue.ID
		booking.Venue = b.Venue.ToDomain()
	}
	return booking
}
