package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "onboard/internal/errors"
	"onboard/internal/model"
	"onboard/internal/repository"
)

// BrokerInput carries the fields an admin supplies when creating or
// updating a broker. Role is honored only on creation and defaults to
// BROKER; this is the only path that can assign ADMIN.
type BrokerInput struct {
	Name     string
	Email    string
	GSTIN    string
	Password string
	Role     model.Role
}

// AdminService handles broker administration. Callers are already verified
// ADMIN by the router, so no ownership scoping applies here.
type AdminService interface {
	CreateBroker(ctx context.Context, in BrokerInput) (*model.User, error)
	ListBrokers(ctx context.Context) ([]model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateBroker(ctx context.Context, id uuid.UUID, in BrokerInput) (*model.User, error)
	DeleteBroker(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewAdminService creates a new admin service.
func NewAdminService(users repository.UserRepository, bcryptCost int) AdminService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &adminService{users: users, bcryptCost: bcryptCost}
}

// CreateBroker creates a user with an admin-assigned role. Duplicate email
// or GSTIN surfaces as a conflict via the store's unique constraints.
func (s *adminService) CreateBroker(ctx context.Context, in BrokerInput) (*model.User, error) {
	role := in.Role
	if role == "" {
		role = model.RoleBroker
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		GSTIN:        in.GSTIN,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create broker: %w", err)
	}
	return user, nil
}

// ListBrokers returns all BROKER users, newest first.
func (s *adminService) ListBrokers(ctx context.Context) ([]model.User, error) {
	brokers, err := s.users.ListBrokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brokers: %w", err)
	}
	return brokers, nil
}

// ListUsers returns every user with their customers preloaded, newest first.
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.ListWithCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateBroker mutates a broker's profile fields.
func (s *adminService) UpdateBroker(ctx context.Context, id uuid.UUID, in BrokerInput) (*model.User, error) {
	broker, err := s.users.FindBrokerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("find broker: %w", err)
	}

	broker.Name = in.Name
	broker.Email = in.Email
	broker.GSTIN = in.GSTIN
	if err := s.users.Update(ctx, broker); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("update broker: %w", err)
	}
	return broker, nil
}

// DeleteBroker removes a broker and the customers it owns. Both deletes run
// in one transaction: a failed broker delete must not leave its customers
// gone.
func (s *adminService) DeleteBroker(ctx context.Context, id uuid.UUID) error {
	broker, err := s.users.FindBrokerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBrokerNotFound
		}
		return fmt.Errorf("find broker: %w", err)
	}

	return s.users.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, customers repository.CustomerRepository) error {
		if err := customers.DeleteByBroker(ctx, broker.ID); err != nil {
			return fmt.Errorf("delete broker customers: %w", err)
		}
		if err := users.Delete(ctx, broker.ID); err != nil {
			return fmt.Errorf("delete broker: %w", err)
		}
		return nil
	})
}
