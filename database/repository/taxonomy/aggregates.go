package taxonomyRepo

import (
	"marketly/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BuildCategoryCountPipeline joins categories to their available services on
// categoryId and counts the matches per category. Soft-deleted services are
// left out so the count agrees with the per-category listing.
func BuildCategoryCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.ServicesCollection},
			{Key: "let", Value: bson.D{{Key: "categoryId", Value: "$id"}}},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$and", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$categoryId", "$$categoryId"}}},
					bson.D{{Key: "$eq", Value: bson.A{"$isAvailable", true}}},
				}}}}}}},
				{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}},
			}},
			{Key: "as", Value: "services"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "icon", Value: 1},
			{Key: "serviceCount", Value: bson.D{{Key: "$size", Value: "$services"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}
}
