package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/authgate/internal/server/http/dto"
	"github.com/polkiloo/authgate/internal/server/http/middleware"
)

// HealthHandler answers readiness probes.
type HealthHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade HealthFacade, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, logger: logger}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		middleware.LoggerFrom(c, h.logger).Warn("health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: dto.StatusUnavailable})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: dto.StatusOK})
}
