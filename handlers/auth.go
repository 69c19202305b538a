package handlers

import (
	"net/http"

	"marketly/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignupHandler handles POST /api/signup.
func (h *UserHandler) SignupHandler(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	user, err := h.UserService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created successfully", "user": user})
}

// LoginHandler handles POST /api/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required")
		return
	}
	resp, err := h.UserService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("user logged in", zap.String("userId", resp.User.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "token": resp.Token, "user": resp.User})
}

// LogoutHandler handles POST /api/logout; the current token stops working.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tokenHash, expiresAt := currentToken(c)
	if err := h.UserService.Logout(c.Request.Context(), tokenHash, expiresAt); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	user, err := h.UserService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "user": user})
}
