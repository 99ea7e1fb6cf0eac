package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testSubscription(endpoint string) domain.PushSubscription {
	return domain.PushSubscription{
		UserID:   TestUserID,
		Endpoint: endpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-key",
	}
}

func TestNotificationService_Subscribe(t *testing.T) {
	t.Run("success upserts the subscription", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)
		subs.On("Upsert", mock.AnythingOfType("*domain.PushSubscription")).Return(nil)

		svc := NewNotificationService(subs, sender)
		err := svc.Subscribe(context.Background(), TestUserID, "https://push.example/ep1", "p256dh-key", "auth-key")

		assert.NoError(t, err)
		subs.AssertExpectations(t)
	})

	t.Run("missing keys are rejected", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)

		svc := NewNotificationService(subs, sender)
		err := svc.Subscribe(context.Background(), TestUserID, "https://push.example/ep1", "", "auth-key")

		assert.ErrorIs(t, err, ErrInvalidSubscription)
		subs.AssertNotCalled(t, "Upsert", mock.Anything)
	})
}

func TestNotificationService_Unsubscribe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)
		subs.On("Delete", TestUserID, "https://push.example/ep1").Return(nil)

		svc := NewNotificationService(subs, sender)
		err := svc.Unsubscribe(context.Background(), TestUserID, "https://push.example/ep1")

		assert.NoError(t, err)
		subs.AssertExpectations(t)
	})

	t.Run("empty endpoint is rejected", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)

		svc := NewNotificationService(subs, sender)
		err := svc.Unsubscribe(context.Background(), TestUserID, "")

		assert.ErrorIs(t, err, ErrInvalidSubscription)
	})
}

func TestNotificationService_NotifyStatusChange(t *testing.T) {
	order := CreateMockOrder(TestOrderID, TestUserID, domain.StatusReady, TestPrice)
	status := CreateMockStatus(domain.StatusReady, "ready")

	t.Run("delivers to every subscription", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)
		registered := []domain.PushSubscription{
			testSubscription("https://push.example/ep1"),
			testSubscription("https://push.example/ep2"),
		}
		subs.On("FindByUser", TestUserID).Return(registered, nil)
		sender.On("Send", mock.Anything, mock.AnythingOfType("domain.PushSubscription"), mock.Anything).
			Return(http.StatusCreated, nil).Times(2)

		svc := NewNotificationService(subs, sender)
		err := svc.NotifyStatusChange(context.Background(), order, status)

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 2)
		subs.AssertNotCalled(t, "DeleteEndpoint", mock.Anything)
	})

	t.Run("gone endpoint is pruned", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)
		dead := testSubscription("https://push.example/dead")
		subs.On("FindByUser", TestUserID).Return([]domain.PushSubscription{dead}, nil)
		sender.On("Send", mock.Anything, dead, mock.Anything).Return(http.StatusGone, nil)
		subs.On("DeleteEndpoint", dead.Endpoint).Return(nil)

		svc := NewNotificationService(subs, sender)
		err := svc.NotifyStatusChange(context.Background(), order, status)

		assert.NoError(t, err)
		subs.AssertCalled(t, "DeleteEndpoint", dead.Endpoint)
	})

	t.Run("send failure does not abort the fan-out", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)
		ok := testSubscription("https://push.example/ok")
		bad := testSubscription("https://push.example/bad")
		subs.On("FindByUser", TestUserID).Return([]domain.PushSubscription{bad, ok}, nil)
		sender.On("Send", mock.Anything, bad, mock.Anything).Return(0, assert.AnError)
		sender.On("Send", mock.Anything, ok, mock.Anything).Return(http.StatusCreated, nil)

		svc := NewNotificationService(subs, sender)
		err := svc.NotifyStatusChange(context.Background(), order, status)

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("no subscriptions is a no-op", func(t *testing.T) {
		subs := new(mocks.MockPushSubscriptionRepository)
		sender := new(mocks.MockPushSender)
		subs.On("FindByUser", TestUserID).Return([]domain.PushSubscription{}, nil)

		svc := NewNotificationService(subs, sender)
		err := svc.NotifyStatusChange(context.Background(), order, status)

		assert.NoError(t, err)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNotificationService_SendTest(t *testing.T) {
	subs := new(mocks.MockPushSubscriptionRepository)
	sender := new(mocks.MockPushSender)
	subs.On("FindByUser", TestUserID).Return([]domain.PushSubscription{
		testSubscription("https://push.example/ep1"),
	}, nil)
	sender.On("Send", mock.Anything, mock.AnythingOfType("domain.PushSubscription"), mock.Anything).
		Run(func(args mock.Arguments) {
			var payload NotificationPayload
			assert.NoError(t, json.Unmarshal(args.Get(2).([]byte), &payload))
			assert.Equal(t, "Test Notification", payload.Title)
		}).
		Return(http.StatusCreated, nil)

	svc := NewNotificationService(subs, sender)
	sent, total, err := svc.SendTest(context.Background(), TestUserID)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, total)
}

func TestStatusPayload(t *testing.T) {
	tests := []struct {
		statusName    string
		expectedTitle string
	}{
		{"pending", "Order Received"},
		{"processing", "Order In Progress"},
		{"ready", "Order Ready!"},
		{"completed", "Order Completed"},
		{"rejected", "Order Rejected"},
		{"cancelled", "Order Cancelled"},
		{"weird", "Order Update"},
	}

	for _, tt := range tests {
		t.Run(tt.statusName, func(t *testing.T) {
			payload := StatusPayload(TestOrderID, tt.statusName)

			assert.Equal(t, tt.expectedTitle, payload.Title)
			assert.Contains(t, payload.Body, "#1")
			assert.Equal(t, TestOrderID, payload.Data.OrderID)
			assert.Equal(t, tt.statusName, payload.Data.StatusName)
			assert.Equal(t, "/order/1", payload.Data.URL)
			assert.Len(t, payload.Actions, 2)
		})
	}
}
