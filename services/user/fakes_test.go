package user

import (
	"context"
	"time"

	"marketly/database/repository"
	"marketly/models"

	"go.mongodb.org/mongo-driver/bson"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) UpdateSetDocument(_ context.Context, id string, doc bson.M) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := doc["name"].(string); ok {
		u.Name = v
	}
	if v, ok := doc["profession"].(string); ok {
		u.Profession = v
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) AddProduct(_ context.Context, userID string, p models.Product) ([]models.Product, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Products = append(u.Products, p)
	return u.Products, nil
}

func (m *memUserRepo) UpdateProduct(_ context.Context, userID, productID string, fields bson.M) ([]models.Product, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i := range u.Products {
		if u.Products[i].ID != productID {
			continue
		}
		if v, ok := fields["name"].(string); ok {
			u.Products[i].Name = v
		}
		if v, ok := fields["price"].(float64); ok {
			u.Products[i].Price = v
		}
		return u.Products, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) RemoveProduct(_ context.Context, userID, productID string) ([]models.Product, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i := range u.Products {
		if u.Products[i].ID == productID {
			u.Products = append(u.Products[:i], u.Products[i+1:]...)
			return u.Products, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) AddFavorite(_ context.Context, userID, serviceID string) ([]string, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, id := range u.Favorites {
		if id == serviceID {
			return u.Favorites, nil
		}
	}
	u.Favorites = append(u.Favorites, serviceID)
	return u.Favorites, nil
}

func (m *memUserRepo) RemoveFavorite(_ context.Context, userID, serviceID string) ([]string, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := []string{}
	for _, id := range u.Favorites {
		if id != serviceID {
			kept = append(kept, id)
		}
	}
	u.Favorites = kept
	return u.Favorites, nil
}

func (m *memUserRepo) AddHistory(_ context.Context, userID string, entry models.HistoryEntry) error {
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.History = append(u.History, entry)
	return nil
}

type stubServiceRepo struct {
	services map[string]models.Service
}

func (s *stubServiceRepo) Create(context.Context, *models.Service) error { return nil }
func (s *stubServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	if svc, ok := s.services[id]; ok {
		return &svc, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubServiceRepo) GetByIDs(_ context.Context, ids []string) ([]models.Service, error) {
	out := []models.Service{}
	// Reverse order to show the service restores favorite order.
	for i := len(ids) - 1; i >= 0; i-- {
		if svc, ok := s.services[ids[i]]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}
func (s *stubServiceRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.services[id]
	return ok, nil
}
func (s *stubServiceRepo) UpdateFields(context.Context, string, bson.M) error { return nil }
func (s *stubServiceRepo) AddImage(context.Context, string, string) error     { return nil }
func (s *stubServiceRepo) UpdateRating(context.Context, string, models.RatingSummary) error {
	return nil
}
func (s *stubServiceRepo) Search(context.Context, models.ServiceQuery) ([]models.ServiceListing, int64, error) {
	return nil, 0, nil
}

type memRevocationStore struct {
	revoked map[string]time.Duration
}

func (m *memRevocationStore) Revoke(_ context.Context, hash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.revoked[hash] = ttl
	return nil
}

func (m *memRevocationStore) IsRevoked(_ context.Context, hash string) (bool, error) {
	_, ok := m.revoked[hash]
	return ok, nil
}
