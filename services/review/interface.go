package review

import (
	"context"

	reviewRepo "marketly/database/repository/review"
	serviceRepo "marketly/database/repository/service"
	"marketly/models"
	"marketly/utils"

	"go.uber.org/zap"
)

// ReviewService records reviews and keeps service ratings in sync with them.
type ReviewService interface {
	CreateReview(ctx context.Context, userID, serviceID string, req models.CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, serviceID string, params utils.QueryParams) (*models.ReviewPage, error)
	// RecomputeRating recalculates a service's rating from all of its reviews.
	RecomputeRating(ctx context.Context, serviceID string) (models.RatingSummary, error)
}

// RatingReconciler schedules a later RecomputeRating for a service.
type RatingReconciler interface {
	EnqueueReconcile(ctx context.Context, serviceID string) error
}

// DefaultReviewService is the production implementation. Reconciler may be nil.
type DefaultReviewService struct {
	Reviews    reviewRepo.ReviewRepository
	Services   serviceRepo.ServiceRepository
	Reconciler RatingReconciler
	Logger     *zap.Logger
}
