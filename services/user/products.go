package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketly/database/repository"
	"marketly/models"
	"marketly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultUserService) ListProducts(ctx context.Context, userID string) ([]models.Product, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return nonNilProducts(user.Products), nil
}

// AddProduct appends a product to the user's catalogue and returns the full list.
func (s *DefaultUserService) AddProduct(ctx context.Context, userID string, req models.CreateProductRequest) ([]models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil || *req.Price <= 0 {
		return nil, utils.NewValidationError("name and price are required")
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Price:       *req.Price,
		Description: strings.TrimSpace(req.Description),
		Image:       strings.TrimSpace(req.Image),
		CreatedAt:   time.Now(),
	}
	products, err := s.Repo.AddProduct(ctx, userID, product)
	if err != nil {
		return nil, s.userError("AddProduct", err)
	}
	return nonNilProducts(products), nil
}

func (s *DefaultUserService) UpdateProduct(ctx context.Context, userID, productID string, req models.UpdateProductRequest) ([]models.Product, error) {
	fields := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, utils.NewValidationError("name cannot be empty")
		}
		fields["name"] = name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, utils.NewValidationError("price must be greater than zero")
		}
		fields["price"] = *req.Price
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Image != nil {
		fields["image"] = strings.TrimSpace(*req.Image)
	}
	if len(fields) == 0 {
		return nil, utils.NewValidationError("no fields to update")
	}

	products, err := s.Repo.UpdateProduct(ctx, userID, productID, fields)
	if err != nil {
		return nil, s.productError("UpdateProduct", err)
	}
	return nonNilProducts(products), nil
}

func (s *DefaultUserService) DeleteProduct(ctx context.Context, userID, productID string) ([]models.Product, error) {
	products, err := s.Repo.RemoveProduct(ctx, userID, productID)
	if err != nil {
		return nil, s.productError("DeleteProduct", err)
	}
	return nonNilProducts(products), nil
}

// productError reports a miss as an unknown product; the filter matches on
// both the user and the product id.
func (s *DefaultUserService) productError(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NewNotFoundError("product not found")
	}
	return s.internal(op+": user store failed", err)
}

func nonNilProducts(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
