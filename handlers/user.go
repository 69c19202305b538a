package handlers

import (
	"net/http"

	"marketly/models"
	"marketly/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves accounts, profile and the user's products, favorites
// and history.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

func (h *UserHandler) ListProductsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	products, err := h.UserService.ListProducts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *UserHandler) AddProductHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name and price are required")
		return
	}
	products, err := h.UserService.AddProduct(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product added successfully", "products": products})
}

func (h *UserHandler) UpdateProductHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	products, err := h.UserService.UpdateProduct(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully", "products": products})
}

func (h *UserHandler) DeleteProductHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	products, err := h.UserService.DeleteProduct(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully", "products": products})
}

func (h *UserHandler) ListFavoritesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	services, err := h.UserService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": services})
}

func (h *UserHandler) AddFavoriteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	favorites, err := h.UserService.AddFavorite(c.Request.Context(), userID, c.Param("serviceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": favorites})
}

func (h *UserHandler) RemoveFavoriteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	favorites, err := h.UserService.RemoveFavorite(c.Request.Context(), userID, c.Param("serviceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": favorites})
}

func (h *UserHandler) ListHistoryHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	history, err := h.UserService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
}

func (h *UserHandler) AddHistoryHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	entry, err := h.UserService.AddHistory(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "entry": entry})
}
