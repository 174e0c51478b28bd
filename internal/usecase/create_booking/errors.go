package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrIncompleteRange возвращается при отсутствующей дате или checkIn >= checkOut
	ErrIncompleteRange = errors.New("create_booking: incomplete date range")

	// ErrGuestCountExceeded возвращается, когда гостей больше вместимости площадки
	ErrGuestCountExceeded = errors.New("create_booking: guest count exceeds capacity")

	// ErrDateConflict возвращается, когда выбранный диапазон пересекается с
	// занятыми датами. Возвращается и при локальной проверке, и при отказе
	// сервера: финальное слово за сервером.
	ErrDateConflict = errors.New("create_booking: dates conflict with an existing booking")

	// ErrSubmissionInFlight возвращается при повторной отправке того же выбора,
	// пока предыдущая отправка не завершилась. Сетевой запрос не выполняется.
	ErrSubmissionInFlight = errors.New("create_booking: submission already in flight")

	// ErrUnauthorized возвращается, когда сессия невалидна для upstream API
	ErrUnauthorized = errors.New("create_booking: unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
