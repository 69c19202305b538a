package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"marketly/database"
	"marketly/database/repository"
	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo(db *mongo.Database, logger *zap.Logger) ReviewRepository {
	repo := &mongoReviewRepo{coll: db.Collection(database.ReviewsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create review indexes", zap.Error(err))
	}
	return repo
}

// ensureIndexes enforces one review per (user, service) at the storage level.
func (r *mongoReviewRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "serviceId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "serviceId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", repository.TranslateError(err))
	}
	return nil
}

func (r *mongoReviewRepo) FindByUserAndService(ctx context.Context, userID, serviceID string) (*models.Review, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	var review models.Review
	filter := bson.M{"userId": userID, "serviceId": serviceID}
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		return nil, fmt.Errorf("failed to fetch review: %w", repository.TranslateError(err))
	}
	return &review, nil
}

func (r *mongoReviewRepo) Summarize(ctx context.Context, serviceID string) (models.RatingSummary, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, BuildSummaryPipeline(serviceID))
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("rating aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.RatingSummary
	if err := cursor.All(ctx, &results); err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to decode rating summary: %w", err)
	}
	if len(results) == 0 {
		return models.RatingSummary{}, nil
	}
	return results[0], nil
}

func (r *mongoReviewRepo) ListByService(ctx context.Context, serviceID string, page models.Page) ([]models.ReviewWithAuthor, int64, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{"serviceId": serviceID})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	reviews := []models.ReviewWithAuthor{}
	if total == 0 || page.Skip() >= total {
		return reviews, total, nil
	}

	cursor, err := r.coll.Aggregate(ctx, BuildListPipeline(serviceID, page))
	if err != nil {
		return nil, 0, fmt.Errorf("review listing failed: %w", err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, total, nil
}
