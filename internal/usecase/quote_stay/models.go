package quote_stay

import (
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// Request модель запроса котировки пребывания
type Request struct {
	VenueID  string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// Response модель ответа с котировкой.
// Отклонение выбора это обычное значение ответа, а не ошибка: во время выбора
// дат невалидные состояния возникают постоянно, и провизорная стоимость
// показывается даже для них (0 при пустом диапазоне).
type Response struct {
	VenueID       string
	PricePerNight float64
	Nights        int
	Total         float64
	Valid         bool
	Reason        domain.RejectionReason
}
