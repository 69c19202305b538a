package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

// UploadServiceImageHandler handles POST /api/services/:id/images with a
// multipart "file" field.
func (h *CatalogHandler) UploadServiceImageHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file not provided")
		return
	}
	if fileHeader.Size > maxImageSize {
		badRequest(c, "file exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		getLogger(c).Error("failed to open uploaded file", zap.Error(err))
		badRequest(c, "could not read uploaded file")
		return
	}
	defer file.Close()

	service, err := h.CatalogService.AddServiceImage(c.Request.Context(), userID, c.Param("id"), file, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image uploaded successfully", "service": service})
}
