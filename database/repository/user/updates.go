package userRepo

import (
	"time"

	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Update documents for the embedded user collections. Each one also bumps
// updatedAt on the parent user.

func pushProductUpdate(product models.Product, now time.Time) bson.M {
	return bson.M{
		"$push": bson.M{"products": product},
		"$set":  bson.M{"updatedAt": now},
	}
}

// productFieldsUpdate rewrites fields such as {"name": "x"} to the positional
// form {"products.$.name": "x"} so only the matched product changes.
func productFieldsUpdate(fields bson.M, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	for key, value := range fields {
		set["products.$."+key] = value
	}
	return bson.M{"$set": set}
}

func pullProductUpdate(productID string, now time.Time) bson.M {
	return bson.M{
		"$pull": bson.M{"products": bson.M{"id": productID}},
		"$set":  bson.M{"updatedAt": now},
	}
}

func addFavoriteUpdate(serviceID string, now time.Time) bson.M {
	return bson.M{
		"$addToSet": bson.M{"favorites": serviceID},
		"$set":      bson.M{"updatedAt": now},
	}
}

func removeFavoriteUpdate(serviceID string, now time.Time) bson.M {
	return bson.M{
		"$pull": bson.M{"favorites": serviceID},
		"$set":  bson.M{"updatedAt": now},
	}
}

func pushHistoryUpdate(entry models.HistoryEntry, now time.Time) bson.M {
	return bson.M{
		"$push": bson.M{"history": entry},
		"$set":  bson.M{"updatedAt": now},
	}
}
