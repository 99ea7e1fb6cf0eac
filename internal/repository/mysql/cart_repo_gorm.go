package mysql

import (
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUser(userID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.db.
		Preload("Menu").
		Preload("Menu.Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("cart load failed")
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) FindByUserAndMenu(userID string, menuID uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.Where("user_id = ? AND menu_id = ?", userID, menuID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) Create(item *domain.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *cartRepo) UpdateQuantity(userID string, menuID uint64, quantity int64) error {
	res := r.db.Model(&domain.CartItem{}).
		Where("user_id = ? AND menu_id = ?", userID, menuID).
		Update("quantity", quantity)
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepo) Delete(userID string, menuID uint64) error {
	return r.db.Where("user_id = ? AND menu_id = ?", userID, menuID).
		Delete(&domain.CartItem{}).Error
}

func (r *cartRepo) Clear(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
}
