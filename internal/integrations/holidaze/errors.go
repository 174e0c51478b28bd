package holidaze

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("holidaze client: venue not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("holidaze client: booking not found")

	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("holidaze client: profile not found")

	// ErrConflict возвращается, когда сервер обнаружил пересечение дат
	// при создании бронирования. Финальное слово за сервером.
	ErrConflict = errors.New("holidaze client: booking dates conflict")

	// ErrValidation возвращается, когда сервер отклонил данные запроса
	ErrValidation = errors.New("holidaze client: request rejected by validation")

	// ErrUnauthorized возвращается при отсутствующем или невалидном токене
	ErrUnauthorized = errors.New("holidaze client: unauthorized")

	// ErrForbidden возвращается, когда операция запрещена для этого профиля
	ErrForbidden = errors.New("holidaze client: forbidden")

	// ErrInvalidCredentials возвращается при неверных учетных данных
	ErrInvalidCredentials = errors.New("holidaze client: invalid credentials")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("holidaze client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidaze client: internal error")
)
