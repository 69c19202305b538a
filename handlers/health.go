package handlers

import (
	"net/http"

	"marketly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last background dependency check.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	status := "ok"
	if !health.Mongo || !health.Redis {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"mongo":     health.Mongo,
		"redis":     health.Redis,
		"checkedAt": health.CheckedAt,
	})
}
