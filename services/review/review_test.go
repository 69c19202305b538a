package review

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"marketly/database/repository"
	"marketly/models"
	"marketly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type stubServiceRepo struct {
	services map[string]*models.Service
}

func (s *stubServiceRepo) Create(context.Context, *models.Service) error { return nil }
func (s *stubServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubServiceRepo) GetByIDs(context.Context, []string) ([]models.Service, error) {
	return nil, nil
}
func (s *stubServiceRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.services[id]
	return ok, nil
}
func (s *stubServiceRepo) UpdateFields(context.Context, string, bson.M) error { return nil }
func (s *stubServiceRepo) AddImage(context.Context, string, string) error     { return nil }
func (s *stubServiceRepo) UpdateRating(_ context.Context, id string, summary models.RatingSummary) error {
	svc, ok := s.services[id]
	if !ok {
		return repository.ErrNotFound
	}
	svc.Rating, svc.ReviewCount = summary.Average, summary.Count
	return nil
}
func (s *stubServiceRepo) Search(context.Context, models.ServiceQuery) ([]models.ServiceListing, int64, error) {
	return nil, 0, nil
}

type memReviewRepo struct {
	reviews []models.Review
	// racing simulates a concurrent insert landing between check and write.
	racing bool
}

func (m *memReviewRepo) Create(_ context.Context, r *models.Review) error {
	if m.racing {
		return repository.ErrDuplicate
	}
	for _, existing := range m.reviews {
		if existing.UserID == r.UserID && existing.ServiceID == r.ServiceID {
			return repository.ErrDuplicate
		}
	}
	m.reviews = append(m.reviews, *r)
	return nil
}

func (m *memReviewRepo) FindByUserAndService(_ context.Context, userID, serviceID string) (*models.Review, error) {
	for _, r := range m.reviews {
		if r.UserID == userID && r.ServiceID == serviceID {
			cp := r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memReviewRepo) Summarize(_ context.Context, serviceID string) (models.RatingSummary, error) {
	var sum, n int
	for _, r := range m.reviews {
		if r.ServiceID == serviceID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return models.RatingSummary{}, nil
	}
	return models.RatingSummary{Average: float64(sum) / float64(n), Count: n}, nil
}

func (m *memReviewRepo) ListByService(_ context.Context, serviceID string, page models.Page) ([]models.ReviewWithAuthor, int64, error) {
	var matched []models.ReviewWithAuthor
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].ServiceID == serviceID {
			matched = append(matched, models.ReviewWithAuthor{Review: m.reviews[i]})
		}
	}
	total := int64(len(matched))
	start := int(page.Skip())
	if start >= len(matched) {
		return []models.ReviewWithAuthor{}, total, nil
	}
	end := min(start+page.Limit, len(matched))
	return matched[start:end], total, nil
}

type recordingReconciler struct {
	enqueued []string
	err      error
}

func (r *recordingReconciler) EnqueueReconcile(_ context.Context, serviceID string) error {
	r.enqueued = append(r.enqueued, serviceID)
	return r.err
}

func newTestReviewService() (*DefaultReviewService, *stubServiceRepo, *memReviewRepo, *recordingReconciler) {
	services := &stubServiceRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", IsAvailable: true},
	}}
	reviews := &memReviewRepo{}
	reconciler := &recordingReconciler{}
	return &DefaultReviewService{
		Reviews:    reviews,
		Services:   services,
		Reconciler: reconciler,
		Logger:     zap.NewNop(),
	}, services, reviews, reconciler
}

func rating(n int) *int { return &n }

func TestCreateReviewAggregatesRatings(t *testing.T) {
	svc, services, _, reconciler := newTestReviewService()
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, "user-a", "svc-1", models.CreateReviewRequest{Rating: rating(4)})
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, "user-b", "svc-1", models.CreateReviewRequest{Rating: rating(5), Comment: " great "})
	require.NoError(t, err)

	assert.Equal(t, 4.5, services.services["svc-1"].Rating)
	assert.Equal(t, 2, services.services["svc-1"].ReviewCount)
	assert.Equal(t, []string{"svc-1", "svc-1"}, reconciler.enqueued)
}

func TestCreateReviewSingleRating(t *testing.T) {
	for r := models.MinRating; r <= models.MaxRating; r++ {
		svc, services, _, _ := newTestReviewService()
		_, err := svc.CreateReview(context.Background(), "user-a", "svc-1", models.CreateReviewRequest{Rating: rating(r)})
		require.NoError(t, err)
		assert.Equal(t, float64(r), services.services["svc-1"].Rating)
		assert.Equal(t, 1, services.services["svc-1"].ReviewCount)
	}
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	svc, services, reviews, _ := newTestReviewService()
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, "user-a", "svc-1", models.CreateReviewRequest{Rating: rating(2)})
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, "user-a", "svc-1", models.CreateReviewRequest{Rating: rating(5)})
	assert.True(t, utils.IsErrorType(err, utils.ErrorTypeConflict))
	assert.Len(t, reviews.reviews, 1)
	assert.Equal(t, 2.0, services.services["svc-1"].Rating)
	assert.Equal(t, 1, services.services["svc-1"].ReviewCount)
}

func TestCreateReviewRacingDuplicateIsConflict(t *testing.T) {
	svc, services, reviews, _ := newTestReviewService()
	reviews.racing = true

	_, err := svc.CreateReview(context.Background(), "user-a", "svc-1", models.CreateReviewRequest{Rating: rating(3)})
	assert.True(t, utils.IsErrorType(err, utils.ErrorTypeConflict))
	assert.Zero(t, services.services["svc-1"].ReviewCount)
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _, reviews, _ := newTestReviewService()

	for _, req := range []models.CreateReviewRequest{{}, {Rating: rating(0)}, {Rating: rating(6)}} {
		_, err := svc.CreateReview(context.Background(), "user-a", "svc-1", req)
		assert.True(t, utils.IsErrorType(err, utils.ErrorTypeValidation))
	}

	_, err := svc.CreateReview(context.Background(), "user-a", "missing", models.CreateReviewRequest{Rating: rating(3)})
	assert.True(t, utils.IsErrorType(err, utils.ErrorTypeNotFound))
	assert.Empty(t, reviews.reviews)
}

func TestCreateReviewSucceedsWhenEnqueueFails(t *testing.T) {
	svc, services, _, reconciler := newTestReviewService()
	reconciler.err = errors.New("redis down")

	_, err := svc.CreateReview(context.Background(), "user-a", "svc-1", models.CreateReviewRequest{Rating: rating(3)})
	require.NoError(t, err)
	assert.Equal(t, 1, services.services["svc-1"].ReviewCount)
}

func TestRecomputeRatingConverges(t *testing.T) {
	svc, services, reviews, _ := newTestReviewService()
	reviews.reviews = []models.Review{
		{UserID: "a", ServiceID: "svc-1", Rating: 1},
		{UserID: "b", ServiceID: "svc-1", Rating: 5},
	}
	// Stale values left behind by a lost update.
	services.services["svc-1"].Rating = 1
	services.services["svc-1"].ReviewCount = 1

	summary, err := svc.RecomputeRating(context.Background(), "svc-1")
	require.NoError(t, err)
	assert.Equal(t, models.RatingSummary{Average: 3, Count: 2}, summary)
	assert.Equal(t, 2, services.services["svc-1"].ReviewCount)
}

func TestListReviewsNewestFirst(t *testing.T) {
	svc, _, reviews, _ := newTestReviewService()
	reviews.reviews = []models.Review{
		{ID: "r1", UserID: "a", ServiceID: "svc-1", Rating: 4},
		{ID: "r2", UserID: "b", ServiceID: "svc-1", Rating: 2},
		{ID: "r3", UserID: "c", ServiceID: "svc-1", Rating: 5},
	}

	page, err := svc.ListReviews(context.Background(), "svc-1", url.Values{"limit": {"2"}})
	require.NoError(t, err)
	require.Len(t, page.Reviews, 2)
	assert.Equal(t, "r3", page.Reviews[0].ID)
	assert.Equal(t, int64(2), page.TotalPages)

	_, err = svc.ListReviews(context.Background(), "missing", url.Values{})
	assert.True(t, utils.IsErrorType(err, utils.ErrorTypeNotFound))
}
