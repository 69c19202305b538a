package catalog

import (
	"context"
	"io"

	serviceRepo "marketly/database/repository/service"
	taxonomyRepo "marketly/database/repository/taxonomy"
	"marketly/models"
	"marketly/services/storage"
	"marketly/utils"

	"go.uber.org/zap"
)

// CatalogService covers service listings, categories and service management.
type CatalogService interface {
	// Listing
	ListServices(ctx context.Context, params utils.QueryParams) (*models.ServicePage, error)
	SearchServices(ctx context.Context, params utils.QueryParams) (*models.ServicePage, error)
	ListCategoryServices(ctx context.Context, categoryID string, params utils.QueryParams) (*models.ServicePage, error)

	// Taxonomy
	ListCategories(ctx context.Context) ([]models.CategoryView, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)

	// Management
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, ownerID string, req models.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, ownerID, id string, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, ownerID, id string) error
	AddServiceImage(ctx context.Context, ownerID, id string, file io.Reader, filename string) (*models.Service, error)
}

// DefaultCatalogService is the production implementation. Images may be nil,
// in which case uploads report the store as unavailable.
type DefaultCatalogService struct {
	Services    serviceRepo.ServiceRepository
	Taxonomy    taxonomyRepo.TaxonomyRepository
	Images      storage.ImageStore
	ImageFolder string
	Logger      *zap.Logger
}
