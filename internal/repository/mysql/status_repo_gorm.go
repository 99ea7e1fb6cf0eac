package mysql

import (
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"gorm.io/gorm"
)

type statusRepo struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) repository.StatusRepository {
	return &statusRepo{db: db}
}

func (r *statusRepo) FindAll() ([]domain.Status, error) {
	var out []domain.Status
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *statusRepo) FindByID(id uint64) (*domain.Status, error) {
	var s domain.Status
	err := r.db.First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
