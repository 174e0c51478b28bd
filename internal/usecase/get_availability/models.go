package get_availability

import "time"

// Request модель запроса на получение занятых дат площадки
type Request struct {
	VenueID string
}

// Response модель ответа с занятыми датами площадки.
// BlockedDates отсортированы хронологически: само множество порядка не
// гарантирует, сортировка выполняется на границе ответа.
type Response struct {
	VenueID       string
	PricePerNight float64
	MaxGuests     int
	BlockedDates  []time.Time
}
