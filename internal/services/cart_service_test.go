package services

import (
	"context"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCartService_AddItem(t *testing.T) {
	tests := []struct {
		name             string
		quantity         int64
		setupMocks       func(*mocks.MockCartRepository, *mocks.MockMenuRepository)
		expectedError    error
		expectedQuantity int64
	}{
		{
			name:     "new item clamps quantity to stock",
			quantity: TestStock + 10,
			setupMocks: func(cart *mocks.MockCartRepository, menu *mocks.MockMenuRepository) {
				menu.On("FindByID", TestMenuID).Return(CreateMockMenuItem(TestMenuID, TestMenuName, TestPrice, TestStock), nil)
				cart.On("FindByUserAndMenu", TestUserID, TestMenuID).Return(nil, nil)
				cart.On("Create", mock.AnythingOfType("*domain.CartItem")).Return(nil)
			},
			expectedQuantity: TestStock,
		},
		{
			name:     "existing row merges and clamps",
			quantity: 4,
			setupMocks: func(cart *mocks.MockCartRepository, menu *mocks.MockMenuRepository) {
				menu.On("FindByID", TestMenuID).Return(CreateMockMenuItem(TestMenuID, TestMenuName, TestPrice, TestStock), nil)
				cart.On("FindByUserAndMenu", TestUserID, TestMenuID).Return(&domain.CartItem{
					UserID:   TestUserID,
					MenuID:   TestMenuID,
					Quantity: 3,
				}, nil)
				cart.On("UpdateQuantity", TestUserID, TestMenuID, TestStock).Return(nil)
			},
			expectedQuantity: TestStock,
		},
		{
			name:     "out of stock item is rejected",
			quantity: 1,
			setupMocks: func(cart *mocks.MockCartRepository, menu *mocks.MockMenuRepository) {
				menu.On("FindByID", TestMenuID).Return(CreateMockMenuItem(TestMenuID, TestMenuName, TestPrice, 0), nil)
			},
			expectedError: ErrOutOfStock,
		},
		{
			name:     "unknown menu item",
			quantity: 1,
			setupMocks: func(cart *mocks.MockCartRepository, menu *mocks.MockMenuRepository) {
				menu.On("FindByID", TestMenuID).Return(nil, nil)
			},
			expectedError: ErrMenuItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := new(mocks.MockCartRepository)
			menu := new(mocks.MockMenuRepository)
			tt.setupMocks(cart, menu)

			svc := NewCartService(cart, menu)
			item, err := svc.AddItem(context.Background(), TestUserID, TestMenuID, tt.quantity)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
				cart.AssertNotCalled(t, "Create", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, item)
				assert.Equal(t, tt.expectedQuantity, item.Quantity)
				assert.GreaterOrEqual(t, item.Quantity, int64(1))
				assert.LessOrEqual(t, item.Quantity, TestStock)
			}

			cart.AssertExpectations(t)
			menu.AssertExpectations(t)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("quantity above stock is clamped", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		menu := new(mocks.MockMenuRepository)
		menu.On("FindByID", TestMenuID).Return(CreateMockMenuItem(TestMenuID, TestMenuName, TestPrice, TestStock), nil)
		cart.On("UpdateQuantity", TestUserID, TestMenuID, TestStock).Return(nil)

		svc := NewCartService(cart, menu)
		err := svc.UpdateQuantity(context.Background(), TestUserID, TestMenuID, 99)

		assert.NoError(t, err)
		cart.AssertExpectations(t)
	})

	t.Run("zero quantity removes the row", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		menu := new(mocks.MockMenuRepository)
		cart.On("Delete", TestUserID, TestMenuID).Return(nil)

		svc := NewCartService(cart, menu)
		err := svc.UpdateQuantity(context.Background(), TestUserID, TestMenuID, 0)

		assert.NoError(t, err)
		cart.AssertExpectations(t)
		menu.AssertNotCalled(t, "FindByID", mock.Anything)
	})

	t.Run("negative quantity removes the row", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		menu := new(mocks.MockMenuRepository)
		cart.On("Delete", TestUserID, TestMenuID).Return(nil)

		svc := NewCartService(cart, menu)
		err := svc.UpdateQuantity(context.Background(), TestUserID, TestMenuID, -3)

		assert.NoError(t, err)
		cart.AssertExpectations(t)
	})

	t.Run("missing row reports cart item not found", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		menu := new(mocks.MockMenuRepository)
		menu.On("FindByID", TestMenuID).Return(CreateMockMenuItem(TestMenuID, TestMenuName, TestPrice, TestStock), nil)
		cart.On("UpdateQuantity", TestUserID, TestMenuID, int64(2)).Return(gorm.ErrRecordNotFound)

		svc := NewCartService(cart, menu)
		err := svc.UpdateQuantity(context.Background(), TestUserID, TestMenuID, 2)

		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	cart := new(mocks.MockCartRepository)
	menu := new(mocks.MockMenuRepository)
	cart.On("Clear", TestUserID).Return(nil)

	svc := NewCartService(cart, menu)
	assert.NoError(t, svc.ClearCart(context.Background(), TestUserID))
	cart.AssertExpectations(t)
}
