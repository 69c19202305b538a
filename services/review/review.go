package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketly/database/repository"
	"marketly/models"
	"marketly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReview stores a user's single review of a service and refreshes the
// service's rating. The insert and the recompute are separate writes.
func (s *DefaultReviewService) CreateReview(ctx context.Context, userID, serviceID string, req models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating == nil || *req.Rating < models.MinRating || *req.Rating > models.MaxRating {
		return nil, utils.NewValidationError("rating must be an integer between %d and %d", models.MinRating, models.MaxRating)
	}

	if err := s.requireService(ctx, serviceID); err != nil {
		return nil, err
	}

	_, err := s.Reviews.FindByUserAndService(ctx, userID, serviceID)
	switch {
	case err == nil:
		return nil, utils.NewConflictError("you have already reviewed this service")
	case !errors.Is(err, repository.ErrNotFound):
		return nil, s.internal("CreateReview: duplicate check failed", err)
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		ServiceID: serviceID,
		Rating:    *req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now(),
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.NewConflictError("you have already reviewed this service")
		}
		return nil, s.internal("CreateReview: insert failed", err)
	}

	if _, err := s.RecomputeRating(ctx, serviceID); err != nil {
		return nil, err
	}

	if s.Reconciler != nil {
		if err := s.Reconciler.EnqueueReconcile(ctx, serviceID); err != nil {
			s.logger().Warn("failed to schedule rating reconcile",
				zap.String("serviceId", serviceID), zap.Error(err))
		}
	}
	return review, nil
}

func (s *DefaultReviewService) RecomputeRating(ctx context.Context, serviceID string) (models.RatingSummary, error) {
	summary, err := s.Reviews.Summarize(ctx, serviceID)
	if err != nil {
		return models.RatingSummary{}, s.internal("rating aggregation failed", err)
	}
	if err := s.Services.UpdateRating(ctx, serviceID, summary); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.RatingSummary{}, utils.NewNotFoundError("service %s not found", serviceID)
		}
		return models.RatingSummary{}, s.internal("rating update failed", err)
	}
	s.logger().Debug("service rating recomputed",
		zap.String("serviceId", serviceID),
		zap.Float64("average", summary.Average),
		zap.Int("count", summary.Count))
	return summary, nil
}

// ListReviews returns a page of reviews, newest first.
func (s *DefaultReviewService) ListReviews(ctx context.Context, serviceID string, params utils.QueryParams) (*models.ReviewPage, error) {
	page, err := utils.ParsePage(params)
	if err != nil {
		return nil, err
	}
	if err := s.requireService(ctx, serviceID); err != nil {
		return nil, err
	}

	reviews, total, err := s.Reviews.ListByService(ctx, serviceID, page)
	if err != nil {
		return nil, s.internal("review listing failed", err)
	}
	return &models.ReviewPage{
		Reviews:     reviews,
		TotalPages:  models.TotalPages(total, page.Limit),
		CurrentPage: page.Page,
	}, nil
}

func (s *DefaultReviewService) requireService(ctx context.Context, serviceID string) error {
	exists, err := s.Services.Exists(ctx, serviceID)
	if err != nil {
		return s.internal("service lookup failed", err)
	}
	if !exists {
		return utils.NewNotFoundError("service %s not found", serviceID)
	}
	return nil
}

func (s *DefaultReviewService) internal(msg string, err error) error {
	s.logger().Error(msg, zap.Error(err))
	return utils.NewInternalError(msg, err)
}

func (s *DefaultReviewService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
