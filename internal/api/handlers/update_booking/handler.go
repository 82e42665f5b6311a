package update_booking

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	updateBooking "github.com/yash635644/barber-backend/internal/usecase/update_booking"
)

const (
	msgBookingUpdated     = "Booking Updated"
	msgInvalidBookingID   = "Invalid booking ID"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
	msgNotFound           = "Booking not found"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/admin/bookings/{id}/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id}/update - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id}/update - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id}/update - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /admin/bookings/{id}/update - Validation failed: booking_id=%d, %v", bookingID, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, updateBooking.ErrInvalidInput))

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/bookings/{id}/update - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/bookings/{id}/update - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id}/update - Booking updated: booking_id=%d, date_time=%s, notified=%t",
		result.ID, result.DateTime, result.Notified)
	handlers.RespondMessage(w, msgBookingUpdated)
}
