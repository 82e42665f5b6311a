package health

import (
	"context"
	"net/http"
	"time"

	"github.com/yash635644/barber-backend/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности базы
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Response struct {
	Status string `json:"status"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /health - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: "unavailable"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}
