package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"marketly/database/repository"
	"marketly/models"
	"marketly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.Services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError("service %s not found", id)
		}
		return nil, s.internal("GetService: lookup failed", err)
	}
	return service, nil
}

// CreateService lists a new service owned by ownerID. New services start
// unrated.
func (s *DefaultCatalogService) CreateService(ctx context.Context, ownerID string, req models.CreateServiceRequest) (*models.Service, error) {
	title := strings.TrimSpace(req.Title)
	categoryID := strings.TrimSpace(req.CategoryID)
	if title == "" || categoryID == "" {
		return nil, utils.NewValidationError("title and categoryId are required")
	}
	if req.Price == nil {
		return nil, utils.NewValidationError("price is required")
	}
	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}
	if req.Location != nil && !req.Location.Valid() {
		return nil, utils.NewValidationError("location must be [longitude, latitude]")
	}
	if err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	service := &models.Service{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		CategoryID:  categoryID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Images:      req.Images,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if service.Images == nil {
		service.Images = []string{}
	}
	if req.Location != nil {
		point := models.NewGeoPoint(req.Location.Coordinates[0], req.Location.Coordinates[1])
		service.Location = &point
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}

	if err := s.Services.Create(ctx, service); err != nil {
		return nil, s.internal("CreateService: insert failed", err)
	}
	s.logger().Info("service created", zap.String("serviceId", service.ID), zap.String("ownerId", ownerID))
	return service, nil
}

// UpdateService applies the non-nil fields of req. Only the owner may update.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, ownerID, id string, req models.UpdateServiceRequest) (*models.Service, error) {
	if _, err := s.ownedService(ctx, ownerID, id); err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, utils.NewValidationError("title cannot be empty")
		}
		set["title"] = title
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		set["price"] = *req.Price
	}
	if req.CategoryID != nil {
		categoryID := strings.TrimSpace(*req.CategoryID)
		if err := s.requireCategory(ctx, categoryID); err != nil {
			return nil, err
		}
		set["categoryId"] = categoryID
	}
	if req.Images != nil {
		set["images"] = req.Images
	}
	if req.Location != nil {
		if !req.Location.Valid() {
			return nil, utils.NewValidationError("location must be [longitude, latitude]")
		}
		set["location"] = models.NewGeoPoint(req.Location.Coordinates[0], req.Location.Coordinates[1])
	}
	if req.IsAvailable != nil {
		set["isAvailable"] = *req.IsAvailable
	}
	if len(set) == 0 {
		return nil, utils.NewValidationError("no fields to update")
	}

	if err := s.Services.UpdateFields(ctx, id, set); err != nil {
		return nil, s.translate("UpdateService", id, err)
	}
	return s.GetService(ctx, id)
}

// DeleteService withdraws a service from listings. The document and its
// reviews are kept.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, ownerID, id string) error {
	if _, err := s.ownedService(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.Services.UpdateFields(ctx, id, bson.M{"isAvailable": false}); err != nil {
		return s.translate("DeleteService", id, err)
	}
	return nil
}

// AddServiceImage uploads file and appends its URL to the service images.
func (s *DefaultCatalogService) AddServiceImage(ctx context.Context, ownerID, id string, file io.Reader, filename string) (*models.Service, error) {
	if s.Images == nil {
		return nil, utils.NewUnavailableError("image storage is not configured")
	}
	if _, err := s.ownedService(ctx, ownerID, id); err != nil {
		return nil, err
	}

	name := id + "-" + uuid.New().String()
	uploaded, err := s.Images.UploadImage(ctx, file, s.ImageFolder, name)
	if err != nil {
		return nil, s.internal("AddServiceImage: upload failed", err)
	}

	if err := s.Services.AddImage(ctx, id, uploaded.URL); err != nil {
		if delErr := s.Images.DeleteImage(ctx, uploaded.PublicID); delErr != nil {
			s.logger().Warn("failed to remove orphaned image",
				zap.String("publicId", uploaded.PublicID), zap.Error(delErr))
		}
		return nil, s.translate("AddServiceImage", id, err)
	}
	s.logger().Info("service image uploaded",
		zap.String("serviceId", id), zap.String("file", filename), zap.String("url", uploaded.URL))
	return s.GetService(ctx, id)
}

func (s *DefaultCatalogService) ownedService(ctx context.Context, ownerID, id string) (*models.Service, error) {
	service, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if service.OwnerID != ownerID {
		return nil, utils.NewForbiddenError("only the owner can modify this service")
	}
	return service, nil
}

func (s *DefaultCatalogService) requireCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return utils.NewValidationError("categoryId is required")
	}
	if _, err := s.Taxonomy.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NewValidationError("unknown category %s", categoryID)
		}
		return s.internal("category lookup failed", err)
	}
	return nil
}

func (s *DefaultCatalogService) translate(op, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NewNotFoundError("service %s not found", id)
	}
	return s.internal(op+": update failed", err)
}

func validatePrice(price float64) error {
	if price < 0 {
		return utils.NewValidationError("price must be a non-negative number")
	}
	return nil
}
