// File: database/repository/user/userMongoEmbedded.go
package userRepo

import (
	"context"
	"time"

	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *MongoUserRepo) AddProduct(ctx context.Context, userID string, product models.Product) ([]models.Product, error) {
	user, err := r.findOneAndUpdate(ctx, bson.M{"id": userID}, pushProductUpdate(product, time.Now()))
	if err != nil {
		return nil, err
	}
	return user.Products, nil
}

func (r *MongoUserRepo) UpdateProduct(ctx context.Context, userID, productID string, fields bson.M) ([]models.Product, error) {
	filter := bson.M{"id": userID, "products.id": productID}
	user, err := r.findOneAndUpdate(ctx, filter, productFieldsUpdate(fields, time.Now()))
	if err != nil {
		return nil, err
	}
	return user.Products, nil
}

func (r *MongoUserRepo) RemoveProduct(ctx context.Context, userID, productID string) ([]models.Product, error) {
	filter := bson.M{"id": userID, "products.id": productID}
	user, err := r.findOneAndUpdate(ctx, filter, pullProductUpdate(productID, time.Now()))
	if err != nil {
		return nil, err
	}
	return user.Products, nil
}

func (r *MongoUserRepo) AddFavorite(ctx context.Context, userID, serviceID string) ([]string, error) {
	user, err := r.findOneAndUpdate(ctx, bson.M{"id": userID}, addFavoriteUpdate(serviceID, time.Now()))
	if err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (r *MongoUserRepo) RemoveFavorite(ctx context.Context, userID, serviceID string) ([]string, error) {
	user, err := r.findOneAndUpdate(ctx, bson.M{"id": userID}, removeFavoriteUpdate(serviceID, time.Now()))
	if err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (r *MongoUserRepo) AddHistory(ctx context.Context, userID string, entry models.HistoryEntry) error {
	_, err := r.findOneAndUpdate(ctx, bson.M{"id": userID}, pushHistoryUpdate(entry, time.Now()))
	return err
}
