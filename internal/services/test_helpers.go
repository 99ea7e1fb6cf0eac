package services

import (
	"time"

	"canteen-service/internal/domain"
)

func CreateMockMenuItem(id uint64, name string, price float64, stock int64) *domain.MenuItem {
	return &domain.MenuItem{
		ID:         id,
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: 1,
	}
}

func CreateMockOrder(id uint64, userID string, statusID uint64, total float64) *domain.Order {
	return &domain.Order{
		ID:          id,
		UserID:      userID,
		StatusID:    statusID,
		TotalAmount: total,
		OrderedAt:   time.Now(),
	}
}

func CreateMockStatus(id uint64, name string) *domain.Status {
	return &domain.Status{ID: id, Name: name}
}

const (
	TestUserID   = "9f1c7e5a-0000-4000-8000-000000000001"
	TestMenuID   = uint64(1)
	TestOrderID  = uint64(1)
	TestMenuName = "Nasi Goreng"
	TestPrice    = float64(15000)
	TestStock    = int64(5)
)
