package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"onboard/internal/auth"
	apperrors "onboard/internal/errors"
	"onboard/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "test@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "duplicate email yields conflict",
			email: "existing@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewTokenService("test-secret"), bcrypt.MinCost)
			user, err := svc.Register(context.Background(), "Test User", tt.email, "09TESTG1234H1Z5", "Password1A")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				// Role is server-assigned, never taken from the caller.
				assert.Equal(t, model.RoleBroker, user.Role)
				// The stored hash must verify and must not be the plaintext.
				assert.NotEqual(t, "Password1A", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password1A")))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password1A"), bcrypt.MinCost)
	broker := &model.User{
		ID:           userID,
		Email:        "test@example.com",
		PasswordHash: string(hashed),
		Role:         model.RoleBroker,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "Password1A",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(broker, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "Password1A",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "WrongPass1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(broker, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	tokens := auth.NewTokenService("test-secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, tokens, bcrypt.MinCost)
			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password must be indistinguishable.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)

				// The minted token must verify with matching identity claims.
				claims, err := tokens.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, model.RoleBroker, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
