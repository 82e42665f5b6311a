package manage_holidays

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/service/holidays"
	"github.com/yash635644/barber-backend/internal/service/holidays/models"
)

const (
	msgHolidayAdded       = "Holiday added"
	msgHolidayDeleted     = "Holiday deleted"
	msgInvalidHolidayID   = "Invalid holiday ID"
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Holiday not found"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/holidays
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /holidays - Failed to list holidays: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, result)
}

// Upcoming GET /api/holidays/upcoming
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Upcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /holidays/upcoming - Failed to list holidays: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, result)
}

// Create POST /api/holidays
// Дубликаты на одну дату не проверяются
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.HolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrInvalidInput):
			h.logger.Warn("POST /holidays - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, holidays.ErrInvalidInput))

		default:
			h.logger.Error("POST /holidays - Failed to create holiday: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holidays - Holiday created: id=%d, date=%s, status=%s", created.ID, created.Date, created.Status)
	handlers.RespondJSON(w, http.StatusCreated, handlers.MsgResponse{
		Msg: msgHolidayAdded,
		ID:  created.ID,
	})
}

// Delete DELETE /api/holidays/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, holidays.ErrHolidayNotFound):
			h.logger.Warn("DELETE /holidays/{id} - Holiday not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /holidays/{id} - Failed to delete holiday: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holidays/{id} - Holiday deleted: id=%d", id)
	handlers.RespondMsg(w, msgHolidayDeleted)
}
