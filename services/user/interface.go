package user

import (
	"context"
	"time"

	serviceRepo "marketly/database/repository/service"
	userRepo "marketly/database/repository/user"
	"marketly/models"
	"marketly/utils"

	"go.uber.org/zap"
)

type UserService interface {
	// Authentication
	Signup(ctx context.Context, req models.SignupRequest) (*models.PublicUser, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, tokenHash string, expiresAt time.Time) error

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.PublicUser, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.PublicUser, error)

	// Products
	ListProducts(ctx context.Context, userID string) ([]models.Product, error)
	AddProduct(ctx context.Context, userID string, req models.CreateProductRequest) ([]models.Product, error)
	UpdateProduct(ctx context.Context, userID, productID string, req models.UpdateProductRequest) ([]models.Product, error)
	DeleteProduct(ctx context.Context, userID, productID string) ([]models.Product, error)

	// Favorites
	ListFavorites(ctx context.Context, userID string) ([]models.Service, error)
	AddFavorite(ctx context.Context, userID, serviceID string) ([]string, error)
	RemoveFavorite(ctx context.Context, userID, serviceID string) ([]string, error)

	// History
	ListHistory(ctx context.Context, userID string) ([]models.HistoryEntry, error)
	AddHistory(ctx context.Context, userID string, req models.AddHistoryRequest) (*models.HistoryEntry, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	Services    serviceRepo.ServiceRepository
	Tokens      *utils.TokenManager
	Revocations utils.RevocationStore
	Logger      *zap.Logger
}
