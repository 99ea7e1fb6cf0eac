package repository

import (
	"canteen-service/internal/domain"
)

type StatusRepository interface {
	FindAll() ([]domain.Status, error)
	FindByID(id uint64) (*domain.Status, error)
}
