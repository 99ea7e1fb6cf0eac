package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/infra/push"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidSubscription = errors.New("endpoint and keys are required")

type NotificationPayload struct {
	Title              string               `json:"title"`
	Body               string               `json:"body"`
	Icon               string               `json:"icon"`
	Badge              string               `json:"badge"`
	Data               NotificationData     `json:"data"`
	Actions            []NotificationAction `json:"actions"`
	RequireInteraction bool                 `json:"requireInteraction"`
}

type NotificationData struct {
	OrderID    uint64    `json:"orderId"`
	StatusName string    `json:"statusName"`
	URL        string    `json:"url"`
	Timestamp  time.Time `json:"timestamp"`
}

type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

type NotificationService struct {
	subs   repository.PushSubscriptionRepository
	sender push.Sender
}

func NewNotificationService(subs repository.PushSubscriptionRepository, sender push.Sender) *NotificationService {
	return &NotificationService{subs: subs, sender: sender}
}

func (s *NotificationService) Subscribe(ctx context.Context, userID, endpoint, p256dh, authKey string) error {
	if endpoint == "" || p256dh == "" || authKey == "" {
		return ErrInvalidSubscription
	}
	return s.subs.Upsert(&domain.PushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     authKey,
	})
}

func (s *NotificationService) Unsubscribe(ctx context.Context, userID, endpoint string) error {
	if endpoint == "" {
		return ErrInvalidSubscription
	}
	return s.subs.Delete(userID, endpoint)
}

// NotifyStatusChange pushes the per-status message to every subscription
// the order's owner registered. Endpoints the push service reports gone
// (410/404) are deleted.
func (s *NotificationService) NotifyStatusChange(ctx context.Context, order *domain.Order, status *domain.Status) error {
	payload := StatusPayload(order.ID, status.Name)
	sent, total, err := s.fanOut(ctx, order.UserID, payload)
	if err != nil {
		return err
	}
	if total > 0 {
		log.Info().
			Uint64("order_id", order.ID).
			Str("status", status.Name).
			Int("sent", sent).
			Int("total", total).
			Msg("status notifications dispatched")
	}
	return nil
}

// SendTest delivers a test notification to the caller's own subscriptions.
func (s *NotificationService) SendTest(ctx context.Context, userID string) (sent, total int, err error) {
	payload := NotificationPayload{
		Title: "Test Notification",
		Body:  "Push notifications are working.",
		Icon:  "/icon-192x192.png",
		Badge: "/icon-192x192.png",
		Data:  NotificationData{URL: "/", Timestamp: time.Now()},
	}
	return s.fanOut(ctx, userID, payload)
}

// SendRaw pushes an arbitrary payload to one subscription; admin test path.
func (s *NotificationService) SendRaw(ctx context.Context, sub domain.PushSubscription, payload json.RawMessage) (int, error) {
	return s.sender.Send(ctx, sub, payload)
}

func (s *NotificationService) fanOut(ctx context.Context, userID string, payload NotificationPayload) (sent, total int, err error) {
	subscriptions, err := s.subs.FindByUser(userID)
	if err != nil {
		return 0, 0, err
	}
	if len(subscriptions) == 0 {
		return 0, 0, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, 0, err
	}

	results := make([]bool, len(subscriptions))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range subscriptions {
		i, sub := i, sub
		g.Go(func() error {
			code, sendErr := s.sender.Send(gctx, sub, body)
			if sendErr != nil {
				log.Warn().Err(sendErr).Str("endpoint", sub.Endpoint).Msg("push delivery failed")
				return nil
			}
			if code == http.StatusGone || code == http.StatusNotFound {
				log.Info().Str("endpoint", sub.Endpoint).Msg("removing dead push subscription")
				if delErr := s.subs.DeleteEndpoint(sub.Endpoint); delErr != nil {
					log.Warn().Err(delErr).Str("endpoint", sub.Endpoint).Msg("dead subscription cleanup failed")
				}
				return nil
			}
			results[i] = code >= 200 && code < 300
			return nil
		})
	}
	// workers swallow their own errors; Wait only joins them
	_ = g.Wait()

	for _, ok := range results {
		if ok {
			sent++
		}
	}
	return sent, len(subscriptions), nil
}

// StatusPayload builds the browser notification for a status value.
// Unknown statuses get the generic update message.
func StatusPayload(orderID uint64, statusName string) NotificationPayload {
	var title, body string
	switch statusName {
	case "pending":
		title = "Order Received"
		body = fmt.Sprintf("Order #%d has been received and is queued.", orderID)
	case "processing":
		title = "Order In Progress"
		body = fmt.Sprintf("Order #%d is being prepared. Estimated 15-20 minutes.", orderID)
	case "ready":
		title = "Order Ready!"
		body = fmt.Sprintf("Order #%d is ready for pickup.", orderID)
	case "completed":
		title = "Order Completed"
		body = fmt.Sprintf("Order #%d is complete. Thank you!", orderID)
	case "rejected":
		title = "Order Rejected"
		body = fmt.Sprintf("Sorry, order #%d was rejected. Please contact us for details.", orderID)
	case "cancelled":
		title = "Order Cancelled"
		body = fmt.Sprintf("Order #%d has been cancelled.", orderID)
	default:
		title = "Order Update"
		body = fmt.Sprintf("Order #%d status changed to %s.", orderID, statusName)
	}

	return NotificationPayload{
		Title: title,
		Body:  body,
		Icon:  "/icon-192x192.png",
		Badge: "/icon-192x192.png",
		Data: NotificationData{
			OrderID:    orderID,
			StatusName: statusName,
			URL:        fmt.Sprintf("/order/%d", orderID),
			Timestamp:  time.Now(),
		},
		Actions: []NotificationAction{
			{Action: "view", Title: "View Order"},
			{Action: "dismiss", Title: "Dismiss"},
		},
	}
}

var _ Notifier = (*NotificationService)(nil)
