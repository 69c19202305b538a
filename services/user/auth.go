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
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account. Emails are unique case-insensitively.
func (s *DefaultUserService) Signup(ctx context.Context, req models.SignupRequest) (*models.PublicUser, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	profession := strings.TrimSpace(req.Profession)
	if name == "" || email == "" || req.Password == "" || profession == "" {
		return nil, utils.NewValidationError("all fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.internal("Signup: failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Profession:   profession,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.NewConflictError("email already registered")
		}
		return nil, s.internal("Signup: failed to create user", err)
	}

	s.logger().Info("user signed up", zap.String("userId", user.ID))
	public := user.Public()
	return &public, nil
}

// Login checks credentials and issues an access token.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewUnauthorizedError("invalid credentials")
		}
		return nil, s.internal("Login: failed to fetch user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.Tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, s.internal("Login: failed to sign token", err)
	}
	return &models.AuthResponse{Token: token, User: user.Public()}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *DefaultUserService) Logout(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	if s.Revocations == nil {
		return utils.NewUnavailableError("token revocation is not available")
	}
	if err := s.Revocations.Revoke(ctx, tokenHash, time.Until(expiresAt)); err != nil {
		s.logger().Error("Logout: failed to revoke token", zap.Error(err))
		return utils.NewUnavailableError("could not log out, please try again")
	}
	return nil
}

func (s *DefaultUserService) internal(msg string, err error) error {
	s.logger().Error(msg, zap.Error(err))
	return utils.NewInternalError(msg, err)
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
