package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "onboard/internal/errors"
	"onboard/internal/model"
	"onboard/internal/repository"
)

// UserService exposes profile reads.
type UserService interface {
	Profile(ctx context.Context, id uuid.UUID) (*model.User, error)
	Get(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Profile fetches the acting user's own record fresh from the store.
func (s *userService) Profile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Get fetches a user by id. Brokers may only read their own profile;
// admins may read any.
func (s *userService) Get(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID) (*model.User, error) {
	if actorRole != model.RoleAdmin && actorID != id {
		return nil, apperrors.ErrForbidden
	}
	return s.Profile(ctx, id)
}
