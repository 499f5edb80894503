package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpize/internal/services"
	"helpize/internal/utils"
	"helpize/pkg/logger"
)

type AlertHandler struct {
	alertService services.AlertService
	logger       *logger.Logger
}

func NewAlertHandler(alertService services.AlertService, log *logger.Logger) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		logger:       log,
	}
}

// ListAlerts returns every alert in submission order as a bare JSON array.
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.alertService.List(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list alerts")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, alerts)
}
