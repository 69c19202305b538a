package handlers

import (
	"net/http"

	"marketly/models"
	"marketly/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves service listings, categories and service management.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

func servicePageJSON(page *models.ServicePage) gin.H {
	return gin.H{
		"success":     true,
		"services":    page.Services,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	}
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	page, err := h.CatalogService.ListServices(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, servicePageJSON(page))
}

// SearchServicesHandler handles GET /api/search?q=.
func (h *CatalogHandler) SearchServicesHandler(c *gin.Context) {
	page, err := h.CatalogService.SearchServices(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, servicePageJSON(page))
}

// ListCategoryServicesHandler handles GET /api/categories/:id/services.
func (h *CatalogHandler) ListCategoryServicesHandler(c *gin.Context) {
	page, err := h.CatalogService.ListCategoryServices(c.Request.Context(), c.Param("id"), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, servicePageJSON(page))
}

// ListCategoriesHandler handles GET /api/categories.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// ListServiceTypesHandler handles GET /api/service-types.
func (h *CatalogHandler) ListServiceTypesHandler(c *gin.Context) {
	types, err := h.CatalogService.ListServiceTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "serviceTypes": types})
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.CatalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	service, err := h.CatalogService.CreateService(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Service created successfully", "service": service})
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	service, err := h.CatalogService.UpdateService(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service updated successfully", "service": service})
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteService(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted successfully"})
}
