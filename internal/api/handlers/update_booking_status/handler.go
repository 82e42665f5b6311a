package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/api/middleware"
	updateStatus "github.com/yash635644/barber-backend/internal/usecase/update_booking_status"
)

const (
	msgStatusUpdated      = "Status Updated"
	msgInvalidBookingID   = "Invalid booking ID"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidStatus      = "Invalid status"
	msgInvalidTransition  = "invalid status transition"
	msgNotFound           = "Booking not found"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	admin, _ := middleware.GetUsername(r.Context())

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		BookingID: bookingID,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrInvalidStatus), errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PUT /admin/bookings/{id} - Invalid status: booking_id=%d, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateStatus.ErrInvalidTransition):
			h.logger.Warn("PUT /admin/bookings/{id} - Transition rejected: booking_id=%d, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, updateStatus.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/bookings/{id} - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id} - Status updated: booking_id=%d, status=%s, notified=%t, admin=%s",
		result.ID, result.Status, result.Notified, admin)
	handlers.RespondMessage(w, msgStatusUpdated)
}
