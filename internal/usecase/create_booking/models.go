package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Session  *domain.Session
	VenueID  string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// submissionKey ключ выбора для защиты от повторной отправки:
// один и тот же профиль, площадка и диапазон дат
func (r *Request) submissionKey() string {
	return fmt.Sprintf("%s|%s|%s|%s",
		r.Session.Name,
		r.VenueID,
		r.CheckIn.UTC().Format(domain.DateFormat),
		r.CheckOut.UTC().Format(domain.DateFormat),
	)
}

// Response модель ответа с созданным бронированием и его котировкой
type Response struct {
	BookingID     string
	VenueID       string
	VenueName     string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Nights        int
	Total         float64
	PricePerNight float64
	CreatedAt     time.Time
}
