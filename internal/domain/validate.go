package domain

// RejectionReason причина отклонения выбранного диапазона дат.
// Это обычные возвращаемые значения, а не ошибки: во время интерактивного
// выбора дат отклонения возникают постоянно и ожидаемо.
type RejectionReason string

const (
	// RejectionNone пустая причина: выбор прошел все проверки
	RejectionNone RejectionReason = ""

	// RejectionIncompleteRange отсутствует одна из дат, checkIn >= checkOut
	// или пребывание короче минимального количества ночей
	RejectionIncompleteRange RejectionReason = "incomplete_range"

	// RejectionGuestCountExceeded количество гостей вне вместимости площадки
	RejectionGuestCountExceeded RejectionReason = "guest_count_exceeded"

	// RejectionDateConflict диапазон пересекается с занятыми датами
	RejectionDateConflict RejectionReason = "date_conflict"
)

// IsValid returns true if the reason represents a passing validation
func (r RejectionReason) IsValid() bool {
	return r == RejectionNone
}

// StayConstraints ограничения площадки для валидации выбора
type StayConstraints struct {
	MinNights int // 0 = без минимума
	MaxGuests int
}

// ValidateSelection проверяет кандидата на бронирование против существующих
// бронирований и ограничений площадки. Проверки выполняются в фиксированном
// порядке, первая провалившаяся определяет причину; одновременные нарушения
// не агрегируются:
//
//  1. Обе даты заданы, checkIn < checkOut и пребывание не короче MinNights.
//  2. 1 <= guests <= MaxGuests.
//  3. Кандидат не пересекается ни с одним активным бронированием. Пересечение
//     считается по строгим неравенствам: день выезда существующего бронирования
//     открыт для нового заезда, а день выезда кандидата открыт для чужого заезда
//     (same-day turnover в обе стороны). Отображаемый набор занятых дат при этом
//     включает день выезда, см. DeriveBlockedDates.
//
// Чистая функция без побочных эффектов; отправку бронирования выполняет
// вызывающий. Сервер остается финальным арбитром конфликтов, эта проверка
// работает поверх потенциально устаревшего списка бронирований.
func ValidateSelection(sel StaySelection, intervals []BookingInterval, constraints StayConstraints, guests int) RejectionReason {
	if !sel.IsComplete() {
		return RejectionIncompleteRange
	}
	if constraints.MinNights > 0 && Nights(sel.CheckIn, sel.CheckOut) < constraints.MinNights {
		return RejectionIncompleteRange
	}

	if guests < 1 || guests > constraints.MaxGuests {
		return RejectionGuestCountExceeded
	}

	for i := range intervals {
		interval := &intervals[i]
		if !interval.IsActive() || interval.IsEmpty() {
			continue
		}
		if interval.Overlaps(sel.CheckIn, sel.CheckOut) {
			return RejectionDateConflict
		}
	}

	return RejectionNone
}
