package services

import (
	"context"
	"testing"

	"canteen-service/internal/auth"
	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"
	"canteen-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(users *mocks.MockUserRepository) *AuthService {
	return NewAuthService(users, auth.NewTokenMaker("test-secret"))
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("success creates customer with tokens", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

		svc := newAuthService(users)
		user, pair, err := svc.SignUp(context.Background(), "budi", "budi@example.com", "secret123")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, domain.RoleCustomer, user.RoleID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		users.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Create", mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEntry)

		svc := newAuthService(users)
		user, pair, err := svc.SignUp(context.Background(), "budi", "budi@example.com", "secret123")

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		assert.Nil(t, pair)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &domain.User{
		ID:           TestUserID,
		Username:     "budi",
		Email:        "budi@example.com",
		PasswordHash: string(hash),
		RoleID:       domain.RoleCustomer,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:     "success",
			email:    "budi@example.com",
			password: "secret123",
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", "budi@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "budi@example.com",
			password: "wrong",
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", "budi@example.com").Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", "nobody@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			tt.setupMocks(users)

			svc := newAuthService(users)
			user, pair, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Nil(t, pair)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored.ID, user.ID)
				assert.NotEmpty(t, pair.AccessToken)
			}

			users.AssertExpectations(t)
		})
	}
}
