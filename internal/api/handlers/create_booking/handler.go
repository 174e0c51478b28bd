package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	createBooking "github.com/m04kA/HLD-BookingGateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound      = "площадка не найдена"
	msgIncompleteRange    = "диапазон дат не задан или дата выезда не позже даты заезда"
	msgGuestCountExceeded = "количество гостей превышает вместимость площадки"
	msgDateConflict       = "выбранные даты пересекаются с существующим бронированием"
	msgSubmissionInFlight = "бронирование этих дат уже отправляется"
	msgSessionExpired     = "сессия недействительна, выполните вход заново"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateConflict):
			h.logger.Warn("POST /bookings - Date conflict: profile=%s, venue=%s", session.Name, req.VenueID)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, createBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /bookings - Submission in flight: profile=%s, venue=%s", session.Name, req.VenueID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, createBooking.ErrIncompleteRange):
			h.logger.Warn("POST /bookings - Incomplete range: profile=%s, venue=%s", session.Name, req.VenueID)
			handlers.RespondBadRequest(w, msgIncompleteRange)

		case errors.Is(err, createBooking.ErrGuestCountExceeded):
			h.logger.Warn("POST /bookings - Guest count exceeded: profile=%s, venue=%s, guests=%d",
				session.Name, req.VenueID, req.Guests)
			handlers.RespondBadRequest(w, msgGuestCountExceeded)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized: profile=%s", session.Name)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: profile=%s, venue=%s, error=%v",
				session.Name, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, profile=%s, venue=%s",
		result.BookingID, session.Name, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
