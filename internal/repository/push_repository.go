package repository

import (
	"canteen-service/internal/domain"
)

type PushSubscriptionRepository interface {
	// Upsert inserts or refreshes the (user, endpoint) row.
	Upsert(sub *domain.PushSubscription) error
	FindByUser(userID string) ([]domain.PushSubscription, error)
	// Delete removes one of the user's own subscriptions.
	Delete(userID string, endpoint string) error
	// DeleteEndpoint removes the endpoint for any user; used when the
	// push service reports the subscription gone (410/404).
	DeleteEndpoint(endpoint string) error
}
