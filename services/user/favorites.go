package user

import (
	"context"

	"marketly/models"
	"marketly/utils"
)

// ListFavorites resolves the user's favorite ids to services, in the order
// they were favorited. Ids of services that no longer exist are skipped.
func (s *DefaultUserService) ListFavorites(ctx context.Context, userID string) ([]models.Service, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	services, err := s.Services.GetByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, s.internal("ListFavorites: service lookup failed", err)
	}
	byID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	ordered := make([]models.Service, 0, len(services))
	for _, id := range user.Favorites {
		if svc, ok := byID[id]; ok {
			ordered = append(ordered, svc)
		}
	}
	return ordered, nil
}

func (s *DefaultUserService) AddFavorite(ctx context.Context, userID, serviceID string) ([]string, error) {
	if err := s.requireService(ctx, serviceID); err != nil {
		return nil, err
	}
	favorites, err := s.Repo.AddFavorite(ctx, userID, serviceID)
	if err != nil {
		return nil, s.userError("AddFavorite", err)
	}
	return nonNilStrings(favorites), nil
}

func (s *DefaultUserService) RemoveFavorite(ctx context.Context, userID, serviceID string) ([]string, error) {
	favorites, err := s.Repo.RemoveFavorite(ctx, userID, serviceID)
	if err != nil {
		return nil, s.userError("RemoveFavorite", err)
	}
	return nonNilStrings(favorites), nil
}

func (s *DefaultUserService) requireService(ctx context.Context, serviceID string) error {
	exists, err := s.Services.Exists(ctx, serviceID)
	if err != nil {
		return s.internal("service lookup failed", err)
	}
	if !exists {
		return utils.NewNotFoundError("service %s not found", serviceID)
	}
	return nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
