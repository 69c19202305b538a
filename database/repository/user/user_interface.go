package userRepo

import (
	"context"

	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access, including the
// products, favorites and history embedded in the user document.
type UserRepository interface {
	// Create inserts a new user; repository.ErrDuplicate when the email is taken.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its (lowercased) email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateSetDocument applies a $set of updateDoc and returns the updated user.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) (*models.User, error)

	AddProduct(ctx context.Context, userID string, product models.Product) ([]models.Product, error)
	// UpdateProduct sets fields on one embedded product; ErrNotFound if the
	// user owns no product with that id.
	UpdateProduct(ctx context.Context, userID, productID string, fields bson.M) ([]models.Product, error)
	RemoveProduct(ctx context.Context, userID, productID string) ([]models.Product, error)

	AddFavorite(ctx context.Context, userID, serviceID string) ([]string, error)
	RemoveFavorite(ctx context.Context, userID, serviceID string) ([]string, error)

	AddHistory(ctx context.Context, userID string, entry models.HistoryEntry) error
}
