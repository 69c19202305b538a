package handlers

import (
	"net/http"

	"marketly/models"
	"marketly/services/review"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	ReviewService review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: svc}
}

// CreateReviewHandler handles POST /api/services/:id/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "rating must be an integer between 1 and 5")
		return
	}
	created, err := h.ReviewService.CreateReview(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Review added successfully", "review": created})
}

// ListReviewsHandler handles GET /api/services/:id/reviews.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	page, err := h.ReviewService.ListReviews(c.Request.Context(), c.Param("id"), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"reviews":     page.Reviews,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}
