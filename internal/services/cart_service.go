package services

import (
	"context"
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOutOfStock       = errors.New("item is out of stock")
)

type CartService struct {
	cart repository.CartRepository
	menu repository.MenuRepository
}

func NewCartService(cart repository.CartRepository, menu repository.MenuRepository) *CartService {
	return &CartService{cart: cart, menu: menu}
}

func (s *CartService) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.cart.FindByUser(userID)
}

// AddItem puts a menu item in the cart, merging with an existing row.
// Persisted quantity is always clamped to [1, stock].
func (s *CartService) AddItem(ctx context.Context, userID string, menuID uint64, quantity int64) (*domain.CartItem, error) {
	item, err := s.menu.FindByID(menuID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	if item.Stock < 1 {
		return nil, ErrOutOfStock
	}

	existing, err := s.cart.FindByUserAndMenu(userID, menuID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		newQuantity := clampQuantity(existing.Quantity+quantity, item.Stock)
		if err := s.cart.UpdateQuantity(userID, menuID, newQuantity); err != nil {
			return nil, err
		}
		existing.Quantity = newQuantity
		existing.Menu = item
		return existing, nil
	}

	row := &domain.CartItem{
		UserID:   userID,
		MenuID:   menuID,
		Quantity: clampQuantity(quantity, item.Stock),
		Menu:     item,
	}
	if err := s.cart.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateQuantity sets the row's quantity; zero or negative removes the
// row, anything else is clamped to [1, stock].
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, menuID uint64, quantity int64) error {
	if quantity <= 0 {
		return s.cart.Delete(userID, menuID)
	}

	item, err := s.menu.FindByID(menuID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMenuItemNotFound
	}

	err = s.cart.UpdateQuantity(userID, menuID, clampQuantity(quantity, item.Stock))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartItemNotFound
	}
	return err
}

func (s *CartService) RemoveItem(ctx context.Context, userID string, menuID uint64) error {
	return s.cart.Delete(userID, menuID)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.cart.Clear(userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("cart clear failed")
		return err
	}
	return nil
}

func clampQuantity(quantity, stock int64) int64 {
	if quantity < 1 {
		return 1
	}
	if quantity > stock {
		return stock
	}
	return quantity
}
