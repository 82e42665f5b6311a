package get_shop

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/service/shop"
)

const msgShopNotFound = "Shop not found"

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/shop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrShopNotFound):
			h.logger.Warn("GET /shop - Shop not found")
			handlers.RespondNotFound(w, msgShopNotFound)

		default:
			h.logger.Error("GET /shop - Failed to get shop: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, FromDomainShop(result))
}
