package auth

import (
	"testing"

	"canteen-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTokenMaker_GenerateAndValidate(t *testing.T) {
	maker := NewTokenMaker("test-secret")
	user := &domain.User{
		ID:       "9f1c7e5a-0000-4000-8000-000000000001",
		Username: "budi",
		Email:    "budi@example.com",
		RoleID:   domain.RoleAdmin,
	}

	access, refresh, err := maker.GenerateTokens(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := maker.Validate(access)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.RoleID)
}

func TestTokenMaker_Validate_WrongSecret(t *testing.T) {
	maker := NewTokenMaker("test-secret")
	user := &domain.User{ID: "abc", RoleID: domain.RoleCustomer}

	access, _, err := maker.GenerateTokens(user)
	assert.NoError(t, err)

	other := NewTokenMaker("different-secret")
	claims, err := other.Validate(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenMaker_Validate_Garbage(t *testing.T) {
	maker := NewTokenMaker("test-secret")
	claims, err := maker.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
