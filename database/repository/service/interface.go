package serviceRepo

import (
	"context"

	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// Create inserts a new service document.
	Create(ctx context.Context, service *models.Service) error
	// GetByID retrieves a service by its id; repository.ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// GetByIDs retrieves the services with the given ids, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]models.Service, error)
	// Exists reports whether a service with id exists.
	Exists(ctx context.Context, id string) (bool, error)
	// UpdateFields applies a $set document to the service.
	UpdateFields(ctx context.Context, id string, set bson.M) error
	// AddImage appends an image URL to the service.
	AddImage(ctx context.Context, id, url string) error
	// UpdateRating stores the aggregated rating and review count.
	UpdateRating(ctx context.Context, id string, summary models.RatingSummary) error
	// Search runs a listing query and returns one page plus the total match count.
	Search(ctx context.Context, query models.ServiceQuery) ([]models.ServiceListing, int64, error)
}
