package services

import (
	"context"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"
	"canteen-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		roleID        uint64
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:   "success",
			roleID: domain.RoleAdmin,
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)
			},
		},
		{
			name:          "invalid role",
			roleID:        99,
			setupMocks:    func(users *mocks.MockUserRepository) {},
			expectedError: ErrInvalidRole,
		},
		{
			name:   "duplicate email",
			roleID: domain.RoleCustomer,
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("Create", mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEntry)
			},
			expectedError: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			tt.setupMocks(users)

			svc := NewUserService(users)
			user, err := svc.CreateUser(context.Background(), "siti", "siti@example.com", tt.roleID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, tt.roleID, user.RoleID)
				assert.Empty(t, user.PasswordHash)
			}

			users.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Update", mock.AnythingOfType("*domain.User")).Return(nil)

		svc := NewUserService(users)
		user, err := svc.UpdateUser(context.Background(), TestUserID, "siti", "siti@example.com", domain.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, TestUserID, user.ID)
		assert.Equal(t, domain.RoleAdmin, user.RoleID)
	})

	t.Run("missing user", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Update", mock.AnythingOfType("*domain.User")).Return(gorm.ErrRecordNotFound)

		svc := NewUserService(users)
		user, err := svc.UpdateUser(context.Background(), TestUserID, "siti", "siti@example.com", domain.RoleCustomer)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("invalid role", func(t *testing.T) {
		users := new(mocks.MockUserRepository)

		svc := NewUserService(users)
		user, err := svc.UpdateUser(context.Background(), TestUserID, "siti", "siti@example.com", 0)

		assert.ErrorIs(t, err, ErrInvalidRole)
		assert.Nil(t, user)
		users.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Delete", TestUserID).Return(nil)

		svc := NewUserService(users)
		assert.NoError(t, svc.DeleteUser(context.Background(), TestUserID))
		users.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Delete", TestUserID).Return(gorm.ErrRecordNotFound)

		svc := NewUserService(users)
		err := svc.DeleteUser(context.Background(), TestUserID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", TestUserID).Return(&domain.User{ID: TestUserID, Username: "siti"}, nil)

		svc := NewUserService(users)
		user, err := svc.GetUser(context.Background(), TestUserID)

		assert.NoError(t, err)
		assert.Equal(t, "siti", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", TestUserID).Return(nil, nil)

		svc := NewUserService(users)
		user, err := svc.GetUser(context.Background(), TestUserID)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
