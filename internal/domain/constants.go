package domain

// Default stay constraints
const (
	DefaultMinNights = 1
)

// Business validation constants
const (
	MinVenueGuests  = 1
	MaxVenueGuests  = 100
	MaxVenueNameLen = 100
	MaxVenueDescLen = 2000
	MaxStayNights   = 365 // 1 year
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
