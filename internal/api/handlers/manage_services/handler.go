package manage_services

import (
	"errors"
	"net/http"

	"github.com/yash635644/barber-backend/internal/api/handlers"
	"github.com/yash635644/barber-backend/internal/service/catalog"
	"github.com/yash635644/barber-backend/internal/service/catalog/models"
)

const (
	msgServiceAdded       = "Service added"
	msgServiceUpdated     = "Service updated"
	msgServiceDeleted     = "Service deleted"
	msgInvalidServiceID   = "Invalid service ID"
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Service not found"
	msgDuplicateName      = "Service with this name already exists"
)

// Handler прайс-лист: публичный список и админские изменения
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, result)
}

// Create POST /api/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /services", 0, err)
		return
	}

	h.logger.Info("POST /services - Service created: id=%d, name=%q", created.ID, created.Name)
	handlers.RespondJSON(w, http.StatusCreated, handlers.MsgResponse{
		Msg: msgServiceAdded,
		ID:  created.ID,
	})
}

// Update PUT /api/services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		h.respondServiceError(w, "PUT /services/{id}", id, err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: id=%d", id)
	handlers.RespondMsg(w, msgServiceUpdated)
}

// Delete DELETE /api/services/{id}
// Записи с этой услугой остаются как есть
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /services/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%d", id)
	handlers.RespondMsg(w, msgServiceDeleted)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, catalog.ErrInvalidInput))

	case errors.Is(err, catalog.ErrDuplicateName):
		h.logger.Warn("%s - Duplicate service name", route)
		handlers.RespondBadRequest(w, msgDuplicateName)

	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
