package list_bookings

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/service/bookings"
)

const (
	msgInvalidParams = "Invalid query parameters"
	msgInvalidStatus = "Invalid status"
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

// Handle GET /api/admin/bookings
// Query params: date (YYYY-MM-DD), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	statusStr := r.URL.Query().Get("status")

	serviceReq, err := ToServiceRequest(dateStr, statusStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid status: %q", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result))
	handlers.RespondData(w, result)
}
