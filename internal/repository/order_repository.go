package repository

import (
	"canteen-service/internal/domain"
)

type OrderRepository interface {
	// CreateWithItems writes the order and its items in a single
	// transaction; order.ID is populated on success.
	CreateWithItems(order *domain.Order, items []domain.OrderItem) error
	FindByID(id uint64) (*domain.Order, error)
	FindByUser(userID string) ([]domain.Order, error)
	FindAll() ([]domain.Order, error)
	UpdateStatus(id uint64, statusID uint64) error
}
