package handlers

import (
	"net/http"
	"time"

	"marketly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes err as {"success": false, "message": ...}. Internal
// errors are logged in full and reported generically.
func respondError(c *gin.Context, err error) {
	appErr := utils.AsAppError(err)
	status := appErr.Status()
	message := appErr.Message
	if status >= http.StatusInternalServerError && appErr.Type == utils.ErrorTypeInternal {
		getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		message = "Internal server error"
	}
	c.AbortWithStatusJSON(status, utils.ErrorResponse{Success: false, Message: message})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, utils.ErrorResponse{Success: false, Message: message})
}

// currentUserID returns the id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(utils.ContextUserID)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Success: false, Message: "Unauthorized"})
		return "", false
	}
	return id, true
}

func currentToken(c *gin.Context) (string, time.Time) {
	exp, _ := c.Get(utils.ContextTokenExp)
	expiresAt, _ := exp.(time.Time)
	return c.GetString(utils.ContextTokenHash), expiresAt
}
