package mocks

import (
	"context"

	"canteen-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	args := m.Called(order, items)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(userID string) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint64, statusID uint64) error {
	args := m.Called(id, statusID)
	return args.Error(0)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) FindByID(id uint64) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindAll(categoryID uint64, search string) ([]domain.MenuItem, error) {
	args := m.Called(categoryID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Update(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuRepository) FindCategories() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(userID string) ([]domain.CartItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByUserAndMenu(userID string, menuID uint64) (*domain.CartItem, error) {
	args := m.Called(userID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Create(item *domain.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(userID string, menuID uint64, quantity int64) error {
	args := m.Called(userID, menuID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(userID string, menuID uint64) error {
	args := m.Called(userID, menuID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) FindAll() ([]domain.Status, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockStatusRepository) FindByID(id uint64) (*domain.Status, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPushSubscriptionRepository struct {
	mock.Mock
}

func (m *MockPushSubscriptionRepository) Upsert(sub *domain.PushSubscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockPushSubscriptionRepository) FindByUser(userID string) ([]domain.PushSubscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PushSubscription), args.Error(1)
}

func (m *MockPushSubscriptionRepository) Delete(userID string, endpoint string) error {
	args := m.Called(userID, endpoint)
	return args.Error(0)
}

func (m *MockPushSubscriptionRepository) DeleteEndpoint(endpoint string) error {
	args := m.Called(endpoint)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockChangePublisher struct {
	mock.Mock
}

func (m *MockChangePublisher) PublishChange(ctx context.Context, change domain.OrderChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, sub domain.PushSubscription, payload []byte) (int, error) {
	args := m.Called(ctx, sub, payload)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyStatusChange(ctx context.Context, order *domain.Order, status *domain.Status) error {
	args := m.Called(ctx, order, status)
	return args.Error(0)
}
