package reviewRepo

import (
	"marketly/database"
	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BuildSummaryPipeline groups all reviews of a service into an average and count.
func BuildSummaryPipeline(serviceID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "serviceId", Value: serviceID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// BuildListPipeline pages a service's reviews newest first and joins the
// reviewer's name.
func BuildListPipeline(serviceID string, page models.Page) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "serviceId", Value: serviceID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: int64(page.Limit)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.UsersCollection},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "authorName", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$author.name", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "author", Value: 0},
		}}},
	}
}
