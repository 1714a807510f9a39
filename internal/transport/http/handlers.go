package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/chrono_catalog/internal/ports"
	"github.com/Gunvolt24/chrono_catalog/pkg/httpx"
	"github.com/Gunvolt24/chrono_catalog/pkg/validate"
)

// Handler — HTTP-обработчики каталога поверх CatalogReadService.
type Handler struct {
	service ports.CatalogReadService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — timeout ограничивает обработку одного запроса (0 — без ограничения).
func NewHandler(service ports.CatalogReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

func (h *Handler) health(c *gin.Context) {
	dbTime, err := h.service.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"timestamp":     time.Now().UTC().Format(time.RFC3339Nano),
		"database_time": dbTime,
	})
}

func (h *Handler) sample(c *gin.Context) {
	list, err := h.service.SampleWatches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "watches": list})
}

func (h *Handler) listWatches(c *gin.Context) {
	filter, err := httpx.WatchFilter(c)
	if err != nil {
		httpx.AbortError(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	list, err := h.service.ListWatches(c.Request.Context(), filter)
	switch {
	case errors.Is(err, validate.ErrInvalidFilter):
		httpx.AbortError(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	case err != nil:
		httpx.AbortError(c, http.StatusInternalServerError, "Failed to fetch watches", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) compareWatches(c *gin.Context) {
	list, err := h.service.CompareWatches(c.Request.Context())
	if err != nil {
		httpx.AbortError(c, http.StatusInternalServerError, "Failed to fetch watches", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) featuredWatch(c *gin.Context) {
	w, err := h.service.FeaturedWatch(c.Request.Context())
	if err != nil {
		httpx.AbortError(c, http.StatusInternalServerError, "Failed to fetch watch", err)
		return
	}
	if w == nil {
		httpx.AbortError(c, http.StatusNotFound, "Nenhum relógio em destaque encontrado", nil)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *Handler) watchByID(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.AbortError(c, http.StatusBadRequest, "ID deve ser um número", nil)
		return
	}

	w, err := h.service.WatchByID(c.Request.Context(), id)
	if err != nil {
		httpx.AbortError(c, http.StatusInternalServerError, "Failed to fetch watch", err)
		return
	}
	if w == nil {
		httpx.AbortError(c, http.StatusNotFound, "Relógio não encontrado", nil)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":            "Rota não encontrada",
		"path":             c.Request.URL.Path,
		"method":           c.Request.Method,
		"available_routes": AvailableRoutes,
	})
}
