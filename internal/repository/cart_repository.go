package repository

import (
	"canteen-service/internal/domain"
)

type CartRepository interface {
	FindByUser(userID string) ([]domain.CartItem, error)
	FindByUserAndMenu(userID string, menuID uint64) (*domain.CartItem, error)
	Create(item *domain.CartItem) error
	UpdateQuantity(userID string, menuID uint64, quantity int64) error
	Delete(userID string, menuID uint64) error
	Clear(userID string) error
}
