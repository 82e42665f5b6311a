package admin_login

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/service/auth"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidCredentials = "Invalid credentials"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, expiresAt, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to issue token: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Token issued: username=%s, expires_at=%s", req.Username, expiresAt)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
