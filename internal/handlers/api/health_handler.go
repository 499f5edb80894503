package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpize/internal/utils"
)

// Pinger is any backend the health check should probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	if checks == nil {
		checks = map[string]Pinger{}
	}
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		utils.ErrorResponseWithDetails(c, http.StatusServiceUnavailable, "UNHEALTHY", "one or more backends are unavailable", status)
		return
	}

	utils.SuccessResponse(c, "ok", gin.H{
		"app":      utils.AppName,
		"version":  utils.AppVersion,
		"backends": status,
	})
}
