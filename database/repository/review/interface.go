package reviewRepo

import (
	"context"

	"marketly/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a review; repository.ErrDuplicate if the user already reviewed the service.
	Create(ctx context.Context, review *models.Review) error
	// FindByUserAndService returns the user's review of a service; repository.ErrNotFound if none.
	FindByUserAndService(ctx context.Context, userID, serviceID string) (*models.Review, error)
	// Summarize computes the average rating and count over all reviews of a service.
	Summarize(ctx context.Context, serviceID string) (models.RatingSummary, error)
	// ListByService returns one page of reviews, newest first, plus the total count.
	ListByService(ctx context.Context, serviceID string, page models.Page) ([]models.ReviewWithAuthor, int64, error)
}
