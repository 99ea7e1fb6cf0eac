package mysql

import (
	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pushRepo struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushRepo{db: db}
}

func (r *pushRepo) Upsert(sub *domain.PushSubscription) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "updated_at"}),
	}).Create(sub).Error
	if err != nil {
		log.Error().Err(err).Str("user_id", sub.UserID).Msg("push subscription upsert failed")
		return mapErr(err)
	}
	return nil
}

func (r *pushRepo) FindByUser(userID string) ([]domain.PushSubscription, error) {
	var out []domain.PushSubscription
	if err := r.db.Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pushRepo) Delete(userID string, endpoint string) error {
	return r.db.Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&domain.PushSubscription{}).Error
}

func (r *pushRepo) DeleteEndpoint(endpoint string) error {
	return r.db.Where("endpoint = ?", endpoint).
		Delete(&domain.PushSubscription{}).Error
}
