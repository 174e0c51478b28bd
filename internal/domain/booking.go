package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingInterval существующее бронирование, занимающее непрерывный диапазон дат
// на одной площадке. Инвариант: Start <= End. Интервалы с Start > End считаются
// пустыми и не блокируют ни одной даты.
type BookingInterval struct {
	ID     string
	Start  time.Time
	End    time.Time
	Guests int
	Status BookingStatus
}

// IsEmpty returns true if the interval blocks no dates
func (i *BookingInterval) IsEmpty() bool {
	return dateOnly(i.Start).After(dateOnly(i.End))
}

// IsActive returns true if the booking still occupies its dates
func (i *BookingInterval) IsActive() bool {
	return i.Status != StatusCancelled
}

// Overlaps проверяет пересечение интервала с кандидатом [checkIn, checkOut)
// по строгим неравенствам на нормализованных датах. День выезда с обеих сторон
// остается свободным: заезд в день чужого выезда и выезд в день чужого заезда
// не считаются пересечением (same-day turnover).
func (i *BookingInterval) Overlaps(checkIn, checkOut time.Time) bool {
	return dateOnly(checkIn).Before(dateOnly(i.End)) &&
		dateOnly(checkOut).After(dateOnly(i.Start))
}

// Booking a confirmed reservation as returned by the upstream API
type Booking struct {
	ID       string
	VenueID  string
	Start    time.Time
	End      time.Time
	Guests   int
	Status   BookingStatus
	Venue    *Venue
	Created  time.Time
	Updated  time.Time
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StaySelection the in-progress check-in/check-out pair under construction.
// Никогда не сохраняется до отправки бронирования.
type StaySelection struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// IsComplete returns true if both endpoints are set and ordered
func (s *StaySelection) IsComplete() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero() &&
		dateOnly(s.CheckIn).Before(dateOnly(s.CheckOut))
}
