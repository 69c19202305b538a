package serviceRepo

import (
	"regexp"

	"marketly/database"
	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BuildServiceFilter translates a ServiceFilter into a Mongo filter. Only
// available services ever match.
func BuildServiceFilter(f models.ServiceFilter) bson.M {
	filter := bson.M{"isAvailable": true}

	if f.CategoryID != "" {
		filter["categoryId"] = f.CategoryID
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if f.Search != "" {
		// Literal substring, not a user supplied pattern.
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// BuildSort orders by the requested field, breaking ties by insertion order.
func BuildSort(s models.ServiceSort) bson.D {
	sort := bson.D{}
	if s.Field != "" {
		sort = append(sort, bson.E{Key: s.Field, Value: int(s.Order)})
	}
	return append(sort, bson.E{Key: "_id", Value: 1})
}

// BuildListingPipeline returns the aggregation for one page of a listing,
// joined with the owner's public fields and the category name.
func BuildListingPipeline(q models.ServiceQuery) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: BuildServiceFilter(q.Filter)}},
		{{Key: "$sort", Value: BuildSort(q.Sort)}},
		{{Key: "$skip", Value: q.Page.Skip()}},
		{{Key: "$limit", Value: int64(q.Page.Limit)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.UsersCollection},
			{Key: "let", Value: bson.D{{Key: "ownerId", Value: "$ownerId"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$id", "$$ownerId"}},
				}}}}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "_id", Value: 0},
					{Key: "id", Value: 1},
					{Key: "name", Value: 1},
					{Key: "email", Value: 1},
				}}},
			}},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CategoriesCollection},
			{Key: "localField", Value: "categoryId"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "category"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "categoryName", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$category.name", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: 0},
		}}},
	}
}
