package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "onboard/internal/errors"
	"onboard/internal/metrics"
	"onboard/internal/model"
	"onboard/internal/repository"
)

// CustomerInput carries the mutable customer fields.
type CustomerInput struct {
	Name  string
	Email string
	GSTIN string
}

// CustomerService handles customer CRUD scoped by the acting identity.
type CustomerService interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole model.Role, in CustomerInput, brokerID *uuid.UUID) (*model.Customer, error)
	ListForBroker(ctx context.Context, brokerID uuid.UUID) ([]model.Customer, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID, in CustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID) error
}

type customerService struct {
	customers repository.CustomerRepository
	users     repository.UserRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customers repository.CustomerRepository, users repository.UserRepository) CustomerService {
	return &customerService{customers: customers, users: users}
}

// Create creates a customer owned by the acting broker. An admin must name
// the owning broker explicitly; the reference is validated against the store
// before the customer is created. A broker-supplied broker_id is ignored.
func (s *customerService) Create(ctx context.Context, actorID uuid.UUID, actorRole model.Role, in CustomerInput, brokerID *uuid.UUID) (*model.Customer, error) {
	owner := actorID
	if actorRole == model.RoleAdmin {
		if brokerID == nil {
			return nil, apperrors.ErrBrokerRequired
		}
		target, err := s.users.FindBrokerByID(ctx, *brokerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidBroker
			}
			return nil, fmt.Errorf("find broker: %w", err)
		}
		owner = target.ID
	}

	customer := &model.Customer{
		Name:     in.Name,
		Email:    in.Email,
		GSTIN:    in.GSTIN,
		BrokerID: owner,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	metrics.CustomersCreatedTotal.WithLabelValues(string(actorRole)).Inc()
	return customer, nil
}

// ListForBroker returns the customers owned by the given broker, newest first.
func (s *customerService) ListForBroker(ctx context.Context, brokerID uuid.UUID) ([]model.Customer, error) {
	customers, err := s.customers.ListByBroker(ctx, brokerID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// ListAll returns every customer regardless of owner, newest first.
func (s *customerService) ListAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Update mutates a customer after re-checking ownership against the store.
// A broker touching another broker's customer gets the same not-found error
// as a missing record.
func (s *customerService) Update(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID, in CustomerInput) (*model.Customer, error) {
	customer, err := s.authorize(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	customer.Name = in.Name
	customer.Email = in.Email
	customer.GSTIN = in.GSTIN
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete removes a customer after re-checking ownership against the store.
func (s *customerService) Delete(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID) error {
	customer, err := s.authorize(ctx, actorID, actorRole, id)
	if err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, customer.ID); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// authorize fetches the customer fresh and enforces the ownership rule:
// the actor must be an admin or the owning broker.
func (s *customerService) authorize(ctx context.Context, actorID uuid.UUID, actorRole model.Role, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if actorRole != model.RoleAdmin && customer.BrokerID != actorID {
		return nil, apperrors.ErrCustomerNotFound
	}
	return customer, nil
}
