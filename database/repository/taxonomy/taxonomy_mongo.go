package taxonomyRepo

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

type mongoTaxonomyRepo struct {
	categories   *mongo.Collection
	serviceTypes *mongo.Collection
}

// NewMongoTaxonomyRepo returns a TaxonomyRepository backed by MongoDB.
func NewMongoTaxonomyRepo(db *mongo.Database, logger *zap.Logger) TaxonomyRepository {
	repo := &mongoTaxonomyRepo{
		categories:   db.Collection(database.CategoriesCollection),
		serviceTypes: db.Collection(database.ServiceTypesCollection),
	}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create taxonomy indexes", zap.Error(err))
	}
	return repo
}

func (r *mongoTaxonomyRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	for _, coll := range []*mongo.Collection{r.categories, r.serviceTypes} {
		if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

func (r *mongoTaxonomyRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	var category models.Category
	if err := r.categories.FindOne(ctx, bson.M{"id": id}).Decode(&category); err != nil {
		return nil, fmt.Errorf("failed to fetch category with id %s: %w", id, repository.TranslateError(err))
	}
	return &category, nil
}

func (r *mongoTaxonomyRepo) ListCategoriesWithCounts(ctx context.Context) ([]models.CategoryCount, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.categories.Aggregate(ctx, BuildCategoryCountPipeline())
	if err != nil {
		return nil, fmt.Errorf("category count aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	counts := []models.CategoryCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return counts, nil
}

func (r *mongoTaxonomyRepo) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetProjection(bson.M{"_id": 0})
	cursor, err := r.serviceTypes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service types: %w", err)
	}
	defer cursor.Close(ctx)

	types := []models.ServiceType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode service types: %w", err)
	}
	return types, nil
}
