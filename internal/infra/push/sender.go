package push

import (
	"context"

	"canteen-service/internal/domain"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Sender delivers one payload to one browser subscription and reports
// the push service's status code so callers can prune dead endpoints.
type Sender interface {
	Send(ctx context.Context, sub domain.PushSubscription, payload []byte) (int, error)
}

type WebPushSender struct {
	options webpush.Options
}

func NewWebPushSender(subject, vapidPublicKey, vapidPrivateKey string) *WebPushSender {
	return &WebPushSender{
		options: webpush.Options{
			Subscriber:      subject,
			VAPIDPublicKey:  vapidPublicKey,
			VAPIDPrivateKey: vapidPrivateKey,
			TTL:             60,
		},
	}
}

func (s *WebPushSender) Send(ctx context.Context, sub domain.PushSubscription, payload []byte) (int, error) {
	opts := s.options
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &opts)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

var _ Sender = (*WebPushSender)(nil)
