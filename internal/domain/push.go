package domain

import "time"

// PushSubscription holds a browser's web-push endpoint and keys. Upserted
// on opt-in, deleted on opt-out or when delivery reports 410/404.
type PushSubscription struct {
	ID        uint64    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"not null;size:36;uniqueIndex:idx_push_user_endpoint"`
	Endpoint  string    `json:"endpoint" gorm:"not null;size:512;uniqueIndex:idx_push_user_endpoint,length:255"`
	P256dh    string    `json:"p256dh" gorm:"not null;size:255"`
	Auth      string    `json:"auth" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (PushSubscription) TableName() string { return "push_subscriptions" }
