package mysql

import (
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("user create failed")
		return mapErr(err)
	}
	return nil
}

func (r *userRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("Role").Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindAll() ([]domain.User, error) {
	var out []domain.User
	if err := r.db.Preload("Role").Order("created_at DESC").Find(&out).Error; err != nil {
		log.Error().Err(err).Msg("user list failed")
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Update(user *domain.User) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"username": user.Username,
		"email":    user.Email,
		"role_id":  user.RoleID,
	})
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
