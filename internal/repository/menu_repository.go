package repository

import (
	"canteen-service/internal/domain"
)

type MenuRepository interface {
	Create(item *domain.MenuItem) error
	FindByID(id uint64) (*domain.MenuItem, error)
	// FindAll filters by category when categoryID > 0 and by a name
	// substring when search is non-empty.
	FindAll(categoryID uint64, search string) ([]domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(id uint64) error
	FindCategories() ([]domain.Category, error)
}
