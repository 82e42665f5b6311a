package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	getAvailableSlots "github.com/yash635644/barber-backend/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "Date is required"
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	date, err := getAvailableSlots.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
		if errors.Is(err, getAvailableSlots.ErrDateRequired) {
			handlers.RespondBadRequest(w, msgMissingDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateRequired):
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, status=%s, slots_count=%d",
		dateStr, result.Status, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
