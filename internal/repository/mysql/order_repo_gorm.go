package mysql

import (
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// CreateWithItems writes the order and its item rows in one transaction
// so a failed item insert never leaves an orphaned order behind.
func (r *orderRepo) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return mapErr(err)
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return mapErr(err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("order create failed")
		return err
	}
	order.Items = items
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.withRelations(r.db).First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Error().Err(err).Uint64("order_id", id).Msg("order lookup failed")
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.withRelations(r.db).
		Where("user_id = ?", userID).
		Order("ordered_at DESC").
		Find(&out).Error
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("order list failed")
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	err := r.withRelations(r.db).Order("ordered_at DESC").Find(&out).Error
	if err != nil {
		log.Error().Err(err).Msg("order list failed")
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(id uint64, statusID uint64) error {
	res := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status_id", statusID)
	if res.Error != nil {
		log.Error().Err(res.Error).Uint64("order_id", id).Msg("status update failed")
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items").
		Preload("Items.Menu").
		Preload("User").
		Preload("Status")
}
