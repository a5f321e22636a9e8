package list_catalog

import (
	"net/http"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
)

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

// HandleBarbers GET /api/v1/barbers
// Возвращает только мастеров, принимающих записи
func (h *Handler) HandleBarbers(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBarbers(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleServices GET /api/v1/services
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
