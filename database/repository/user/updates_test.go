package userRepo

import (
	"testing"
	"time"

	"marketly/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestProductFieldsUpdateUsesPositionalOperator(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	update := productFieldsUpdate(bson.M{"name": "Lamp", "price": 12.5}, now)

	assert.Equal(t, bson.M{"$set": bson.M{
		"products.$.name":  "Lamp",
		"products.$.price": 12.5,
		"updatedAt":        now,
	}}, update)
}

func TestPullProductUpdateMatchesByID(t *testing.T) {
	now := time.Now()
	update := pullProductUpdate("p1", now)
	assert.Equal(t, bson.M{"products": bson.M{"id": "p1"}}, update["$pull"])
	assert.Equal(t, bson.M{"updatedAt": now}, update["$set"])
}

func TestFavoriteUpdates(t *testing.T) {
	now := time.Now()
	assert.Equal(t, bson.M{"favorites": "s1"}, addFavoriteUpdate("s1", now)["$addToSet"])
	assert.Equal(t, bson.M{"favorites": "s1"}, removeFavoriteUpdate("s1", now)["$pull"])
}

func TestPushUpdates(t *testing.T) {
	now := time.Now()
	product := models.Product{ID: "p1", Name: "Chair", Price: 40}
	assert.Equal(t, bson.M{"products": product}, pushProductUpdate(product, now)["$push"])

	entry := models.HistoryEntry{ID: "h1", ServiceID: "s1", Status: models.HistoryPending}
	assert.Equal(t, bson.M{"history": entry}, pushHistoryUpdate(entry, now)["$push"])
}
