package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrNotVenueManager возвращается, когда профиль не является venue manager
	ErrNotVenueManager = errors.New("profile is not a venue manager")

	// ErrAccessDenied возвращается при попытке изменить чужую площадку
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues service: internal error")
)
