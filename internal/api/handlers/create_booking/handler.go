package create_booking

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/domain"
	createBooking "github.com/yash635644/barber-backend/internal/usecase/create_booking"
)

const (
	msgBookingSent        = "Booking sent!"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
	msgServiceNotFound    = "Service not found"
	msgShopClosedFormat   = "Shop is closed on %s."
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

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
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
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, createBooking.ErrInvalidInput))

		case errors.Is(err, createBooking.ErrShopClosed):
			date := useCaseReq.Date.Format(domain.DateFormat)
			h.logger.Warn("POST /bookings - Shop closed: date=%s", date)
			handlers.RespondBadRequest(w, fmtShopClosed(date))

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service=%q", req.Service)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: name=%q, date=%s, error=%v",
				req.Name, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date_time=%s",
		result.ID, result.DateTime)
	handlers.RespondJSON(w, http.StatusCreated, handlers.CreatedResponse{
		Message: msgBookingSent,
		ID:      result.ID,
	})
}
