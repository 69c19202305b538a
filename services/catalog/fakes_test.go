package catalog

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"marketly/database/repository"
	"marketly/models"
	"marketly/services/storage"

	"go.mongodb.org/mongo-driver/bson"
)

// memServiceRepo keeps services in insertion order, which stands in for _id order.
type memServiceRepo struct {
	services []*models.Service
	failAdd  bool
}

func (m *memServiceRepo) Create(_ context.Context, s *models.Service) error {
	m.services = append(m.services, s)
	return nil
}

func (m *memServiceRepo) find(id string) *models.Service {
	for _, s := range m.services {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (m *memServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	if s := m.find(id); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memServiceRepo) GetByIDs(_ context.Context, ids []string) ([]models.Service, error) {
	out := []models.Service{}
	for _, id := range ids {
		if s := m.find(id); s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Exists(_ context.Context, id string) (bool, error) {
	return m.find(id) != nil, nil
}

func (m *memServiceRepo) UpdateFields(_ context.Context, id string, set bson.M) error {
	s := m.find(id)
	if s == nil {
		return repository.ErrNotFound
	}
	for k, v := range set {
		switch k {
		case "title":
			s.Title = v.(string)
		case "description":
			s.Description = v.(string)
		case "price":
			s.Price = v.(float64)
		case "categoryId":
			s.CategoryID = v.(string)
		case "isAvailable":
			s.IsAvailable = v.(bool)
		case "images":
			s.Images = v.([]string)
		case "location":
			p := v.(models.GeoPoint)
			s.Location = &p
		}
	}
	return nil
}

func (m *memServiceRepo) AddImage(_ context.Context, id, url string) error {
	if m.failAdd {
		return errors.New("write failed")
	}
	s := m.find(id)
	if s == nil {
		return repository.ErrNotFound
	}
	s.Images = append(s.Images, url)
	return nil
}

func (m *memServiceRepo) UpdateRating(_ context.Context, id string, summary models.RatingSummary) error {
	s := m.find(id)
	if s == nil {
		return repository.ErrNotFound
	}
	s.Rating, s.ReviewCount = summary.Average, summary.Count
	return nil
}

func (m *memServiceRepo) Search(_ context.Context, q models.ServiceQuery) ([]models.ServiceListing, int64, error) {
	f := q.Filter
	var matched []models.Service
	for _, s := range m.services {
		if !s.IsAvailable {
			continue
		}
		if f.CategoryID != "" && s.CategoryID != f.CategoryID {
			continue
		}
		if f.MinPrice != nil && s.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && s.Price > *f.MaxPrice {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(s.Title), needle) &&
				!strings.Contains(strings.ToLower(s.Description), needle) {
				continue
			}
		}
		matched = append(matched, *s)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareField(matched[i], matched[j], q.Sort.Field)
		if q.Sort.Order == models.SortDesc {
			c = -c
		}
		return c < 0
	})

	total := int64(len(matched))
	listings := []models.ServiceListing{}
	start := int(q.Page.Skip())
	for i := start; i < len(matched) && i < start+q.Page.Limit; i++ {
		listings = append(listings, models.ServiceListing{Service: matched[i]})
	}
	return listings, total, nil
}

func compareField(a, b models.Service, field string) int {
	cmp := func(x, y float64) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	switch field {
	case "price":
		return cmp(a.Price, b.Price)
	case "rating":
		return cmp(a.Rating, b.Rating)
	case "reviewCount":
		return cmp(float64(a.ReviewCount), float64(b.ReviewCount))
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	return 0
}

type memTaxonomyRepo struct {
	categories []models.Category
	services   *memServiceRepo
	types      []models.ServiceType
}

func (m *memTaxonomyRepo) GetCategoryByID(_ context.Context, id string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memTaxonomyRepo) ListCategoriesWithCounts(_ context.Context) ([]models.CategoryCount, error) {
	out := []models.CategoryCount{}
	for _, c := range m.categories {
		n := 0
		for _, s := range m.services.services {
			if s.CategoryID == c.ID && s.IsAvailable {
				n++
			}
		}
		out = append(out, models.CategoryCount{Category: c, ServiceCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memTaxonomyRepo) ListServiceTypes(_ context.Context) ([]models.ServiceType, error) {
	return m.types, nil
}

type fakeImageStore struct {
	uploaded []string
	deleted  []string
}

func (f *fakeImageStore) UploadImage(_ context.Context, file io.Reader, folder, name string) (*storage.UploadedImage, error) {
	if _, err := io.ReadAll(file); err != nil {
		return nil, err
	}
	f.uploaded = append(f.uploaded, folder+"/"+name)
	return &storage.UploadedImage{PublicID: folder + "/" + name, URL: "https://img.example/" + name}, nil
}

func (f *fakeImageStore) DeleteImage(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}
