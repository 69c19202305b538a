package taxonomyRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestBuildCategoryCountPipeline(t *testing.T) {
	pipeline := BuildCategoryCountPipeline()
	require.Len(t, pipeline, 3)

	lookup := pipeline[0][0]
	assert.Equal(t, "$lookup", lookup.Key)
	assert.Contains(t, lookup.Value.(bson.D), bson.E{Key: "from", Value: "services"})
	assert.Contains(t, lookup.Value.(bson.D), bson.E{Key: "let", Value: bson.D{{Key: "categoryId", Value: "$id"}}})

	var inner mongo.Pipeline
	for _, e := range lookup.Value.(bson.D) {
		if e.Key == "pipeline" {
			inner = e.Value.(mongo.Pipeline)
		}
	}
	require.NotEmpty(t, inner)
	match := inner[0][0]
	assert.Equal(t, "$match", match.Key)
	conds := match.Value.(bson.D)[0].Value.(bson.D)[0].Value.(bson.A)
	assert.Contains(t, conds, bson.D{{Key: "$eq", Value: bson.A{"$categoryId", "$$categoryId"}}})
	assert.Contains(t, conds, bson.D{{Key: "$eq", Value: bson.A{"$isAvailable", true}}})

	project := pipeline[1][0].Value.(bson.D)
	assert.Contains(t, project, bson.E{Key: "serviceCount", Value: bson.D{{Key: "$size", Value: "$services"}}})

	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, pipeline[2][0].Value)
}
