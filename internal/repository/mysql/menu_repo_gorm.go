package mysql

import (
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Create(item *domain.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		log.Error().Err(err).Str("name", item.Name).Msg("menu create failed")
		return mapErr(err)
	}
	return nil
}

func (r *menuRepo) FindByID(id uint64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := r.db.Preload("Category").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) FindAll(categoryID uint64, search string) ([]domain.MenuItem, error) {
	q := r.db.Preload("Category").Order("name ASC")
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var out []domain.MenuItem
	if err := q.Find(&out).Error; err != nil {
		log.Error().Err(err).Msg("menu list failed")
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) Update(item *domain.MenuItem) error {
	res := r.db.Model(&domain.MenuItem{}).Where("id = ?", item.ID).Updates(map[string]any{
		"name":        item.Name,
		"price":       item.Price,
		"stock":       item.Stock,
		"category_id": item.CategoryID,
		"image_url":   item.ImageURL,
	})
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepo) Delete(id uint64) error {
	res := r.db.Delete(&domain.MenuItem{}, id)
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepo) FindCategories() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
