package create_walkin

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/api/middleware"
	createWalkIn "github.com/yash635644/barber-backend/internal/usecase/create_walkin"
)

const (
	msgWalkInAdded        = "Walk-in added!"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
)

type Handler struct {
	useCase CreateWalkInUseCase
	logger  Logger
}

func NewHandler(useCase CreateWalkInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/admin/walkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateWalkInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/walkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/walkin - Invalid time %q: %v", req.Time, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	admin, _ := middleware.GetUsername(r.Context())

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createWalkIn.ErrInvalidInput):
			h.logger.Warn("POST /admin/walkin - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, createWalkIn.ErrInvalidInput))

		default:
			h.logger.Error("POST /admin/walkin - Failed to add walk-in: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/walkin - Walk-in added: booking_id=%d, date_time=%s, admin=%s",
		result.ID, result.DateTime, admin)
	handlers.RespondJSON(w, http.StatusCreated, handlers.CreatedResponse{
		Message: msgWalkInAdded,
		ID:      result.ID,
	})
}
