package taxonomyRepo

import (
	"context"

	"marketly/models"
)

// TaxonomyRepository reads categories and service types.
type TaxonomyRepository interface {
	// GetCategoryByID retrieves a category; repository.ErrNotFound if absent.
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	// ListCategoriesWithCounts joins every category with the number of
	// services referencing it. Computed live on every call.
	ListCategoriesWithCounts(ctx context.Context) ([]models.CategoryCount, error)
	// ListServiceTypes returns all service types sorted by name.
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
}
