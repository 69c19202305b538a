package serviceRepo

import (
	"testing"

	"marketly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func float(v float64) *float64 { return &v }

func TestBuildServiceFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{"isAvailable": true}, BuildServiceFilter(models.ServiceFilter{}))
}

func TestBuildServiceFilterPriceRange(t *testing.T) {
	got := BuildServiceFilter(models.ServiceFilter{MinPrice: float(20), MaxPrice: float(50)})
	assert.Equal(t, bson.M{
		"isAvailable": true,
		"price":       bson.M{"$gte": 20.0, "$lte": 50.0},
	}, got)
}

func TestBuildServiceFilterSingleBound(t *testing.T) {
	got := BuildServiceFilter(models.ServiceFilter{MaxPrice: float(0)})
	assert.Equal(t, bson.M{"$lte": 0.0}, got["price"])

	got = BuildServiceFilter(models.ServiceFilter{MinPrice: float(5)})
	assert.Equal(t, bson.M{"$gte": 5.0}, got["price"])
}

func TestBuildServiceFilterAllConstraints(t *testing.T) {
	got := BuildServiceFilter(models.ServiceFilter{
		CategoryID: "cat-1",
		MinPrice:   float(1),
		Search:     "a.b",
	})

	assert.Equal(t, true, got["isAvailable"])
	assert.Equal(t, "cat-1", got["categoryId"])
	assert.Equal(t, bson.A{
		bson.M{"title": bson.M{"$regex": `a\.b`, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": `a\.b`, "$options": "i"}},
	}, got["$or"])
}

func TestBuildSortAddsInsertionOrderTieBreak(t *testing.T) {
	got := BuildSort(models.ServiceSort{Field: "rating", Order: models.SortDesc})
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}, got)

	got = BuildSort(models.ServiceSort{Field: "price", Order: models.SortAsc})
	assert.Equal(t, bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}, got)
}

func TestBuildListingPipelineStages(t *testing.T) {
	q := models.ServiceQuery{
		Filter: models.ServiceFilter{CategoryID: "cat-1"},
		Sort:   models.ServiceSort{Field: "price", Order: models.SortAsc},
		Page:   models.Page{Page: 3, Limit: 4},
	}

	pipeline := BuildListingPipeline(q)
	require.Len(t, pipeline, 9)

	var ops []string
	for _, stage := range pipeline {
		ops = append(ops, stage[0].Key)
	}
	assert.Equal(t, []string{"$match", "$sort", "$skip", "$limit", "$lookup", "$unwind", "$lookup", "$addFields", "$project"}, ops)

	assert.Equal(t, BuildServiceFilter(q.Filter), pipeline[0][0].Value)
	assert.Equal(t, int64(8), pipeline[2][0].Value)
	assert.Equal(t, int64(4), pipeline[3][0].Value)
}
