package user

import (
	"context"
	"errors"
	"strings"

	"marketly/database/repository"
	"marketly/models"
	"marketly/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// UpdateProfile changes the name and/or profession.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.PublicUser, error) {
	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, utils.NewValidationError("name cannot be empty")
		}
		set["name"] = name
	}
	if req.Profession != nil {
		set["profession"] = strings.TrimSpace(*req.Profession)
	}
	if len(set) == 0 {
		return nil, utils.NewValidationError("no fields to update")
	}

	user, err := s.Repo.UpdateSetDocument(ctx, userID, set)
	if err != nil {
		return nil, s.userError("UpdateProfile", err)
	}
	public := user.Public()
	return &public, nil
}

func (s *DefaultUserService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, s.userError("getUser", err)
	}
	return user, nil
}

func (s *DefaultUserService) userError(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NewNotFoundError("user not found")
	}
	return s.internal(op+": user store failed", err)
}
