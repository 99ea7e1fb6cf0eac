package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidMenuInput = errors.New("menu name, price and stock must be valid")
)

const catalogCacheTTL = time.Minute

type MenuInput struct {
	Name       string
	Price      float64
	Stock      int64
	CategoryID uint64
	ImageURL   string
}

type MenuService struct {
	menu        repository.MenuRepository
	redisClient *redis.Client
}

func NewMenuService(menu repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// ListMenu serves the catalog. Filtered queries go straight to the
// database; the common unfiltered read goes through Redis.
func (s *MenuService) ListMenu(ctx context.Context, categoryID uint64, search string) ([]domain.MenuItem, error) {
	cacheable := categoryID == 0 && search == ""

	if cacheable && s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, s.cacheKey()).Result()
		if err == nil {
			var items []domain.MenuItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.menu.FindAll(categoryID, search)
	if err != nil {
		return nil, err
	}

	if cacheable && s.redisClient != nil {
		if data, err := json.Marshal(items); err == nil {
			s.redisClient.Set(ctx, s.cacheKey(), data, catalogCacheTTL)
		}
	}
	return items, nil
}

func (s *MenuService) GetMenuItem(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	item, err := s.menu.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.menu.FindCategories()
}

func (s *MenuService) CreateMenuItem(ctx context.Context, input MenuInput) (*domain.MenuItem, error) {
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		Name:       input.Name,
		Price:      input.Price,
		Stock:      input.Stock,
		CategoryID: input.CategoryID,
		ImageURL:   input.ImageURL,
	}
	if err := s.menu.Create(item); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	s.invalidateCache(ctx)
	log.Info().Uint64("menu_id", item.ID).Str("name", item.Name).Msg("menu item created")
	return item, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id uint64, input MenuInput) (*domain.MenuItem, error) {
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		ID:         id,
		Name:       input.Name,
		Price:      input.Price,
		Stock:      input.Stock,
		CategoryID: input.CategoryID,
		ImageURL:   input.ImageURL,
	}
	if err := s.menu.Update(item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	s.invalidateCache(ctx)
	return item, nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id uint64) error {
	if err := s.menu.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	s.invalidateCache(ctx)
	log.Info().Uint64("menu_id", id).Msg("menu item deleted")
	return nil
}

func (s *MenuService) cacheKey() string {
	return "catalog:menu"
}

func (s *MenuService) invalidateCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, s.cacheKey()).Err(); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func validateMenuInput(input MenuInput) error {
	if input.Name == "" || input.Price <= 0 || input.Stock < 0 {
		return ErrInvalidMenuInput
	}
	if input.CategoryID == 0 {
		return fmt.Errorf("%w: category is required", ErrInvalidMenuInput)
	}
	return nil
}
