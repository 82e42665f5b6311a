package get_stats

import (
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
)

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to compute stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, FromDomainStats(stats))
}
