package realtime

import (
	"context"

	"canteen-service/internal/domain"
)

type ChangePublisher interface {
	PublishChange(ctx context.Context, change domain.OrderChange) error
}

type ChangeSubscriber interface {
	Subscribe(ctx context.Context, filterOrderID uint64) (*Subscription, error)
}

var (
	_ ChangePublisher  = (*Feed)(nil)
	_ ChangeSubscriber = (*Feed)(nil)
)
