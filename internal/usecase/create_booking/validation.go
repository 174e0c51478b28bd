package create_booking

import (
	"fmt"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки самого выбора дат (полнота диапазона, гости, конфликты) выполняет
// движок: здесь отсеиваются только нарушения контракта.
func validateRequest(req *Request) error {
	if req.Session == nil || req.Session.AccessToken == "" {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if nights := domain.Nights(req.CheckIn, req.CheckOut); nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}

// mapRejection маппит причину отклонения движка в sentinel-ошибку usecase
func mapRejection(reason domain.RejectionReason) error {
	switch reason {
	case domain.RejectionIncompleteRange:
		return ErrIncompleteRange
	case domain.RejectionGuestCountExceeded:
		return ErrGuestCountExceeded
	case domain.RejectionDateConflict:
		return ErrDateConflict
	default:
		return nil
	}
}
