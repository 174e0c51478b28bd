package domain

import (
	"sort"
	"time"
)

// BlockedDates набор календарных дат, занятых существующими бронированиями.
// Ключи нормализованы к полуночи UTC без компонента времени суток.
// Производное значение: пересчитывается при каждом изменении списка бронирований,
// никогда не кэшируется между вызовами.
type BlockedDates map[time.Time]struct{}

// dateOnly нормализует момент времени к календарной дате (полночь UTC)
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DeriveBlockedDates разворачивает интервалы бронирований в набор занятых дат
// для отображения календаря. Каждый интервал блокирует все даты от Start до End
// ВКЛЮЧИТЕЛЬНО: день, на который приходится выезд, показывается занятым. Для
// валидации кандидата набор не используется, там пересечение интервалов
// считается по строгим неравенствам, см. ValidateSelection: заезд в день чужого
// выезда допустим. Интервал с Start == End блокирует ровно одну дату.
// Интервалы с Start > End и отменённые бронирования не блокируют ничего.
// Пересекающиеся интервалы дедуплицируются семантикой множества, поэтому
// результат не зависит от порядка интервалов во входной последовательности.
func DeriveBlockedDates(intervals []BookingInterval) BlockedDates {
	blocked := make(BlockedDates)

	for i := range intervals {
		interval := &intervals[i]
		if !interval.IsActive() || interval.IsEmpty() {
			continue
		}

		end := dateOnly(interval.End)
		for d := dateOnly(interval.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
			blocked[d] = struct{}{}
		}
	}

	return blocked
}

// Contains returns true if the given calendar day is blocked
func (b BlockedDates) Contains(t time.Time) bool {
	_, ok := b[dateOnly(t)]
	return ok
}

// Days возвращает заблокированные даты в хронологическом порядке.
// Само множество порядка не гарантирует.
func (b BlockedDates) Days() []time.Time {
	days := make([]time.Time, 0, len(b))
	for d := range b {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Nights возвращает длительность пребывания в целых сутках.
// Обе даты нормализуются к полуночи UTC перед вычитанием, чтобы переходы на
// летнее время и компонент времени суток не давали ошибку на одну ночь.
// Для checkOut <= checkIn возвращает 0, а не ошибку: во время выбора дат
// провизорная стоимость должна отображаться как 0, а не ронять вызывающего.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	nights := int(dateOnly(checkOut).Sub(dateOnly(checkIn)) / (24 * time.Hour))
	if nights < 0 {
		return 0
	}
	return nights
}

// Total возвращает стоимость пребывания: max(nights, 0) * pricePerNight.
// Никогда не отрицательная. Округление до денежных единиц выполняет слой отображения.
func Total(nights int, pricePerNight float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * pricePerNight
}

// PriceQuote derived value computed from a stay selection and a nightly rate
type PriceQuote struct {
	Nights int
	Total  float64
}

// QuoteStay вычисляет котировку для выбранного диапазона дат
func QuoteStay(sel StaySelection, pricePerNight float64) PriceQuote {
	nights := Nights(sel.CheckIn, sel.CheckOut)
	return PriceQuote{
		Nights: nights,
		Total:  Total(nights, pricePerNight),
	}
}
