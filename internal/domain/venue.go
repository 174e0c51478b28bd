package domain

import "time"

// Venue represents a bookable property with a nightly price and guest capacity
type Venue struct {
	ID            string
	Name          string
	Description   string
	PricePerNight float64
	MaxGuests     int
	Rating        float64

	Media    []Media
	Meta     VenueMeta
	Location VenueLocation

	OwnerName string

	// Существующие бронирования в том виде, в котором их вернул upstream.
	// Источник данных для построения набора заблокированных дат.
	Bookings []BookingInterval

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Media изображение площадки
type Media struct {
	URL string
	Alt string
}

// VenueMeta удобства площадки
type VenueMeta struct {
	WiFi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

// VenueLocation адрес площадки
type VenueLocation struct {
	Address string
	City    string
	Zip     string
	Country string
}

// HasCapacityFor returns true if the venue can host the requested guest count
func (v *Venue) HasCapacityFor(guests int) bool {
	return guests >= 1 && guests <= v.MaxGuests
}

// IsManagedBy returns true if the venue is owned by the given profile
func (v *Venue) IsManagedBy(profileName string) bool {
	return v.OwnerName != "" && v.OwnerName == profileName
}
