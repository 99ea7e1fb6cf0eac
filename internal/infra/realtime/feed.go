package realtime

import (
	"context"
	"encoding/json"

	"canteen-service/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// ChangeChannel is the Redis Pub/Sub channel carrying order change
// events. Every insert/update of an order row is announced here.
const ChangeChannel = "orders:changes"

// Feed is the order change feed. Writers announce changes, readers get a
// cancellable Subscription; delivery is best-effort, consumers refetch
// the affected row on each event.
type Feed struct {
	rdb *redis.Client
}

func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{rdb: rdb}
}

func (f *Feed) PublishChange(ctx context.Context, change domain.OrderChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return f.rdb.Publish(ctx, ChangeChannel, payload).Err()
}

// Subscribe opens a subscription scoped to one order when filterOrderID
// is non-zero, or to the whole orders table when it is zero. The caller
// owns the lifecycle and must Close the handle when done.
func (f *Feed) Subscribe(ctx context.Context, filterOrderID uint64) (*Subscription, error) {
	pubsub := f.rdb.Subscribe(ctx, ChangeChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	events := make(chan domain.OrderChange, 16)
	go func() {
		defer close(events)
		for msg := range pubsub.Channel() {
			var change domain.OrderChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				log.Warn().Err(err).Msg("dropping malformed change event")
				continue
			}
			if filterOrderID != 0 && change.OrderID != filterOrderID {
				continue
			}
			select {
			case events <- change:
			default:
				// slow consumer; the next event triggers a fresh refetch anyway
			}
		}
	}()

	return NewSubscription(events, pubsub.Close), nil
}

// Subscription is a cancellable handle over a stream of change events.
type Subscription struct {
	C       <-chan domain.OrderChange
	closeFn func() error
}

func NewSubscription(events <-chan domain.OrderChange, closeFn func() error) *Subscription {
	return &Subscription{C: events, closeFn: closeFn}
}

func (s *Subscription) Close() error {
	if s.closeFn != nil {
		return s.closeFn()
	}
	return nil
}
