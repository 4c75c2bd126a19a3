package handlers

import (
	"net/http"

	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the last dependency probe. It answers 503 once any dependency is down.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status": statusLabel(code),
		"health": status,
	})
}

func statusLabel(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
