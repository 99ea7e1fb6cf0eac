package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/infra/rabbitmq"
	"canteen-service/internal/infra/realtime"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
	ErrStatusNotFound    = errors.New("status not found")
)

// Notifier dispatches a status-change notification to the order's owner.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, order *domain.Order, status *domain.Status) error
}

type OrderLine struct {
	MenuID   uint64
	Quantity int64
}

type SalesData struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"orderCount"`
	ItemsSold  int64   `json:"itemsSold"`
	Revenue    float64 `json:"revenue"`
}

type OrderService struct {
	repo      repository.OrderRepository
	menu      repository.MenuRepository
	cart      repository.CartRepository
	statuses  repository.StatusRepository
	publisher rabbitmq.PublisherInterface
	feed      realtime.ChangePublisher
	notifier  Notifier
}

func NewOrderService(
	repo repository.OrderRepository,
	menu repository.MenuRepository,
	cart repository.CartRepository,
	statuses repository.StatusRepository,
	publisher rabbitmq.PublisherInterface,
	feed realtime.ChangePublisher,
	notifier Notifier,
) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		cart:      cart,
		statuses:  statuses,
		publisher: publisher,
		feed:      feed,
		notifier:  notifier,
	}
}

// PlaceOrder validates every line against current stock before any write,
// then persists the order and its items in one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, lines []OrderLine, message string) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]domain.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		menuItem, err := s.menu.FindByID(line.MenuID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, ErrMenuItemNotFound
		}
		if line.Quantity > menuItem.Stock {
			return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, menuItem.Name, menuItem.Stock)
		}

		subtotal := menuItem.Price * float64(line.Quantity)
		items = append(items, domain.OrderItem{
			MenuID:   line.MenuID,
			Quantity: line.Quantity,
			Price:    menuItem.Price,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	order := &domain.Order{
		UserID:      userID,
		StatusID:    domain.StatusPending,
		TotalAmount: total,
		Message:     message,
	}
	if err := s.repo.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	if err := s.feed.PublishChange(ctx, domain.OrderChange{Type: domain.ChangeInsert, OrderID: order.ID}); err != nil {
		log.Warn().Err(err).Uint64("order_id", order.ID).Msg("realtime insert event failed")
	}
	go s.publishOrderCreatedEvent(context.Background(), order)

	return order, nil
}

// CheckoutCart turns the user's cart rows into an order and empties the
// cart on success.
func (s *OrderService) CheckoutCart(ctx context.Context, userID string, message string) (*domain.Order, error) {
	rows, err := s.cart.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyOrder
	}

	lines := make([]OrderLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, OrderLine{MenuID: row.MenuID, Quantity: row.Quantity})
	}

	order, err := s.PlaceOrder(ctx, userID, lines, message)
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("cart clear after checkout failed")
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.FindByUser(userID)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll()
}

func (s *OrderService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return s.statuses.FindAll()
}

// UpdateStatus is last-write-wins: no version check, any status can be
// set from any other. Setting the current status again is a no-op and
// dispatches nothing.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, statusID uint64) (*domain.Order, error) {
	status, err := s.statuses.FindByID(statusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}

	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.StatusID == statusID {
		return order, nil
	}

	if err := s.repo.UpdateStatus(orderID, statusID); err != nil {
		return nil, err
	}
	order.StatusID = statusID
	order.Status = status

	if err := s.notifier.NotifyStatusChange(ctx, order, status); err != nil {
		log.Warn().Err(err).Uint64("order_id", orderID).Msg("status notification dispatch failed")
	}
	if err := s.feed.PublishChange(ctx, domain.OrderChange{Type: domain.ChangeUpdate, OrderID: orderID}); err != nil {
		log.Warn().Err(err).Uint64("order_id", orderID).Msg("realtime update event failed")
	}
	go s.publishStatusChangedEvent(context.Background(), order, status)

	return order, nil
}

// SalesByDate aggregates all orders into per-day revenue and counts for
// the dashboard chart.
func (s *OrderService) SalesByDate(ctx context.Context) ([]SalesData, error) {
	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*SalesData)
	for i := range orders {
		date := orders[i].OrderedAt.Format("2006-01-02")
		day, ok := byDate[date]
		if !ok {
			day = &SalesData{Date: date}
			byDate[date] = day
		}
		day.OrderCount++
		day.ItemsSold += orders[i].TotalQuantity()
		day.Revenue += orders[i].TotalAmount
	}

	out := make([]SalesData, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *OrderService) publishOrderCreatedEvent(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		OrderedAt:   order.OrderedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Error().Err(err).Uint64("order_id", order.ID).Msg("failed to publish order.created")
	}
}

func (s *OrderService) publishStatusChangedEvent(ctx context.Context, order *domain.Order, status *domain.Status) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		StatusID:   status.ID,
		StatusName: status.Name,
		ChangedAt:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Error().Err(err).Uint64("order_id", order.ID).Msg("failed to publish order.status_changed")
	}
}
