package catalog

import (
	"context"
	"errors"

	"marketly/database/repository"
	"marketly/models"
	"marketly/utils"

	"go.uber.org/zap"
)

func (s *DefaultCatalogService) ListServices(ctx context.Context, params utils.QueryParams) (*models.ServicePage, error) {
	query, err := ParseServiceQuery(params, "search")
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query)
}

// SearchServices is ListServices with the search text taken from q.
func (s *DefaultCatalogService) SearchServices(ctx context.Context, params utils.QueryParams) (*models.ServicePage, error) {
	query, err := ParseServiceQuery(params, "q")
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query)
}

func (s *DefaultCatalogService) ListCategoryServices(ctx context.Context, categoryID string, params utils.QueryParams) (*models.ServicePage, error) {
	query, err := ParseServiceQuery(params, "search")
	if err != nil {
		return nil, err
	}
	if _, err := s.Taxonomy.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError("category %s not found", categoryID)
		}
		return nil, s.internal("ListCategoryServices: category lookup failed", err)
	}
	query.Filter.CategoryID = categoryID
	return s.runQuery(ctx, query)
}

func (s *DefaultCatalogService) runQuery(ctx context.Context, query models.ServiceQuery) (*models.ServicePage, error) {
	listings, total, err := s.Services.Search(ctx, query)
	if err != nil {
		return nil, s.internal("service search failed", err)
	}
	return &models.ServicePage{
		Services:    listings,
		TotalPages:  models.TotalPages(total, query.Page.Limit),
		CurrentPage: query.Page.Page,
	}, nil
}

// ListCategories returns every category with its formatted service count.
func (s *DefaultCatalogService) ListCategories(ctx context.Context) ([]models.CategoryView, error) {
	counts, err := s.Taxonomy.ListCategoriesWithCounts(ctx)
	if err != nil {
		return nil, s.internal("category count failed", err)
	}
	views := make([]models.CategoryView, 0, len(counts))
	for _, c := range counts {
		views = append(views, models.CategoryView{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Count: FormatCount(c.ServiceCount),
		})
	}
	return views, nil
}

func (s *DefaultCatalogService) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	types, err := s.Taxonomy.ListServiceTypes(ctx)
	if err != nil {
		return nil, s.internal("service type listing failed", err)
	}
	return types, nil
}

func (s *DefaultCatalogService) internal(msg string, err error) error {
	s.logger().Error(msg, zap.Error(err))
	return utils.NewInternalError(msg, err)
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
