package middleware

import (
	"net/http"
	"strings"

	"marketly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Success: false, Message: message})
}

// JWTAuthMiddleware admits requests carrying a valid, unrevoked bearer token
// and stores the caller's user id under utils.ContextUserID. revocations may
// be nil; a failing revocation lookup is logged and the token is accepted.
func JWTAuthMiddleware(tokens *utils.TokenManager, revocations utils.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Unauthorized")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorized(c, "Unauthorized")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		tokenHash := utils.HashToken(tokenString)
		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), tokenHash)
			if err != nil {
				RequestLoggerFrom(c).Warn("token revocation lookup failed", zap.Error(err))
			} else if revoked {
				unauthorized(c, "Token has been revoked")
				return
			}
		}

		c.Set(utils.ContextUserID, claims.Subject)
		c.Set(utils.ContextTokenHash, tokenHash)
		c.Set(utils.ContextTokenExp, claims.ExpiresAt)
		c.Next()
	}
}
