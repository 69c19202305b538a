package database

import (
	"context"
	"fmt"
	"time"

	"marketly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// SeedRecord is one taxonomy entry inserted at startup if absent.
type SeedRecord struct {
	Name        string
	Icon        string
	Description string
}

// DefaultCategories are the browse categories of the home screen.
var DefaultCategories = []SeedRecord{
	{Name: "Food & Beverage", Icon: "restaurant-menu"},
	{Name: "Home & Kitchen", Icon: "house"},
	{Name: "Fashion & Kids", Icon: "checkroom"},
	{Name: "Health & Beauty", Icon: "spa"},
	{Name: "Business", Icon: "business-center"},
	{Name: "Construction", Icon: "construction"},
	{Name: "Books & Media", Icon: "menu-book"},
	{Name: "Sports", Icon: "sports-basketball"},
}

// DefaultServiceTypes are the offering types of the services screen.
var DefaultServiceTypes = []SeedRecord{
	{Name: "Plumbing Services", Icon: "plumbing", Description: "Fix leaks, installations, and repairs."},
	{Name: "Electrician Services", Icon: "electrical-services", Description: "Wiring, installations, and repairs."},
	{Name: "Graphic Design", Icon: "design-services", Description: "Logos, branding, and more."},
}

// SeedUpserts turns seed records into insert-if-absent write models keyed on
// name. Existing documents are left untouched.
func SeedUpserts(records []SeedRecord, newID func() string) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(records))
	for _, rec := range records {
		onInsert := bson.M{
			"id":   newID(),
			"name": rec.Name,
			"icon": rec.Icon,
		}
		if rec.Description != "" {
			onInsert["description"] = rec.Description
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": rec.Name}).
			SetUpdate(bson.M{"$setOnInsert": onInsert}).
			SetUpsert(true))
	}
	return writes
}

func seedCollection(ctx context.Context, coll *mongo.Collection, records []SeedRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	res, err := coll.BulkWrite(ctx, SeedUpserts(records, uuid.NewString), options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", coll.Name(), err)
	}
	return res.UpsertedCount, nil
}

// SeedTaxonomies upserts the default categories and service types.
func SeedTaxonomies(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger := utils.GetLogger()
	for collName, records := range map[string][]SeedRecord{
		CategoriesCollection:   DefaultCategories,
		ServiceTypesCollection: DefaultServiceTypes,
	} {
		inserted, err := seedCollection(ctx, db.Collection(collName), records)
		if err != nil {
			return err
		}
		logger.Info("Seeded collection", zap.String("collection", collName), zap.Int64("inserted", inserted))
	}
	return nil
}
