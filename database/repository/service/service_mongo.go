package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo(db *mongo.Database, logger *zap.Logger) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection(database.ServicesCollection)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create service indexes", zap.Error(err))
	}
	return repo
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isAvailable", Value: 1}, {Key: "categoryId", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "isAvailable", Value: 1}, {Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", repository.TranslateError(err))
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, repository.TranslateError(err))
	}
	return &service, nil
}

func (r *MongoServiceRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	services := []models.Service{}
	if len(ids) == 0 {
		return services, nil
	}
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check service %s: %w", id, err)
	}
	return n > 0, nil
}

func (r *MongoServiceRepo) UpdateFields(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoServiceRepo) AddImage(ctx context.Context, id, url string) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": url},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add image to service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoServiceRepo) UpdateRating(ctx context.Context, id string, summary models.RatingSummary) error {
	return r.UpdateFields(ctx, id, bson.M{
		"rating":      summary.Average,
		"reviewCount": summary.Count,
	})
}

// Search counts the matches and fetches the requested page.
func (r *MongoServiceRepo) Search(ctx context.Context, query models.ServiceQuery) ([]models.ServiceListing, int64, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, BuildServiceFilter(query.Filter))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	listings := []models.ServiceListing{}
	if total == 0 || query.Page.Skip() >= total {
		return listings, total, nil
	}

	cursor, err := r.coll.Aggregate(ctx, BuildListingPipeline(query))
	if err != nil {
		return nil, 0, fmt.Errorf("aggregation query failed: %w", err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode services: %w", err)
	}
	return listings, total, nil
}
