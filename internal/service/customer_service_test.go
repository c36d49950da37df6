package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "onboard/internal/errors"
	"onboard/internal/model"
)

func TestCustomerService_Create(t *testing.T) {
	brokerID := uuid.New()
	adminID := uuid.New()
	targetBrokerID := uuid.New()
	in := CustomerInput{Name: "Acme Ltd", Email: "billing@acme.test", GSTIN: "09AAACA1234B1Z5"}

	t.Run("broker owns the customer it creates", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		users := new(MockUserRepository)
		customers.On("Create", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil)

		svc := NewCustomerService(customers, users)
		customer, err := svc.Create(context.Background(), brokerID, model.RoleBroker, in, nil)

		require.NoError(t, err)
		assert.Equal(t, brokerID, customer.BrokerID)
		customers.AssertExpectations(t)
	})

	t.Run("broker-supplied broker_id is ignored", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		users := new(MockUserRepository)
		customers.On("Create", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil)

		other := uuid.New()
		svc := NewCustomerService(customers, users)
		customer, err := svc.Create(context.Background(), brokerID, model.RoleBroker, in, &other)

		require.NoError(t, err)
		assert.Equal(t, brokerID, customer.BrokerID)
	})

	t.Run("admin must name the owning broker", func(t *testing.T) {
		svc := NewCustomerService(new(MockCustomerRepository), new(MockUserRepository))
		_, err := svc.Create(context.Background(), adminID, model.RoleAdmin, in, nil)
		assert.ErrorIs(t, err, apperrors.ErrBrokerRequired)
	})

	t.Run("admin with valid target broker", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		users := new(MockUserRepository)
		users.On("FindBrokerByID", mock.Anything, targetBrokerID).
			Return(&model.User{ID: targetBrokerID, Role: model.RoleBroker}, nil)
		customers.On("Create", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil)

		svc := NewCustomerService(customers, users)
		customer, err := svc.Create(context.Background(), adminID, model.RoleAdmin, in, &targetBrokerID)

		require.NoError(t, err)
		assert.Equal(t, targetBrokerID, customer.BrokerID)
		users.AssertExpectations(t)
	})

	t.Run("admin with unknown target broker", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		users := new(MockUserRepository)
		users.On("FindBrokerByID", mock.Anything, targetBrokerID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCustomerService(customers, users)
		_, err := svc.Create(context.Background(), adminID, model.RoleAdmin, in, &targetBrokerID)

		assert.ErrorIs(t, err, apperrors.ErrInvalidBroker)
	})
}

func TestCustomerService_OwnershipScoping(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	adminID := uuid.New()
	customerID := uuid.New()
	stored := func() *model.Customer {
		return &model.Customer{ID: customerID, Name: "Acme Ltd", BrokerID: ownerID}
	}
	in := CustomerInput{Name: "Acme Renamed", Email: "new@acme.test", GSTIN: "09AAACA1234B1Z5"}

	tests := []struct {
		name          string
		actorID       uuid.UUID
		actorRole     model.Role
		expectedError error
	}{
		{name: "owner may mutate", actorID: ownerID, actorRole: model.RoleBroker},
		{name: "admin may mutate", actorID: adminID, actorRole: model.RoleAdmin},
		{name: "other broker gets not found", actorID: otherID, actorRole: model.RoleBroker, expectedError: apperrors.ErrCustomerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name+" on update", func(t *testing.T) {
			customers := new(MockCustomerRepository)
			customers.On("FindByID", mock.Anything, customerID).Return(stored(), nil)
			if tt.expectedError == nil {
				customers.On("Update", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil)
			}

			svc := NewCustomerService(customers, new(MockUserRepository))
			updated, err := svc.Update(context.Background(), tt.actorID, tt.actorRole, customerID, in)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Acme Renamed", updated.Name)
				// Ownership never changes on update.
				assert.Equal(t, ownerID, updated.BrokerID)
			}
			customers.AssertExpectations(t)
		})

		t.Run(tt.name+" on delete", func(t *testing.T) {
			customers := new(MockCustomerRepository)
			customers.On("FindByID", mock.Anything, customerID).Return(stored(), nil)
			if tt.expectedError == nil {
				customers.On("Delete", mock.Anything, customerID).Return(nil)
			}

			svc := NewCustomerService(customers, new(MockUserRepository))
			err := svc.Delete(context.Background(), tt.actorID, tt.actorRole, customerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			customers.AssertExpectations(t)
		})
	}

	t.Run("missing customer reads the same as foreign customer", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("FindByID", mock.Anything, customerID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCustomerService(customers, new(MockUserRepository))
		_, err := svc.Update(context.Background(), ownerID, model.RoleBroker, customerID, in)
		assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
	})
}

func TestCustomerService_ListForBroker(t *testing.T) {
	brokerID := uuid.New()
	customers := new(MockCustomerRepository)
	owned := []model.Customer{{ID: uuid.New(), BrokerID: brokerID}}
	customers.On("ListByBroker", mock.Anything, brokerID).Return(owned, nil)

	svc := NewCustomerService(customers, new(MockUserRepository))
	got, err := svc.ListForBroker(context.Background(), brokerID)

	require.NoError(t, err)
	assert.Equal(t, owned, got)
}
