package get_booking

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/api/middleware"
	"github.com/yash635644/barber-backend/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Invalid booking ID"
	msgNotFound         = "Booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	admin, _ := middleware.GetUsername(r.Context())

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{id} - Booking retrieved successfully: booking_id=%d, admin=%s",
		bookingID, admin)
	handlers.RespondData(w, booking)
}
