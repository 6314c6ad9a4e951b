package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
)

const dishListCacheKey = "dishes:all"

// Cache is a JSON value cache; utils.RedisCache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type CatalogService struct {
	dishes repository.DishRepository
	cache  Cache
	ttl    time.Duration
}

// NewCatalogService builds the service; cache may be nil.
func NewCatalogService(dishes repository.DishRepository, cache Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{dishes: dishes, cache: cache, ttl: ttl}
}

// AddDish inserts a dish. Only presence of the fields and a parseable,
// non-negative price are checked; duplicate names are allowed.
func (s *CatalogService) AddDish(ctx context.Context, name, description, price string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, missingField("dish_name")
	}
	if strings.TrimSpace(description) == "" {
		return 0, missingField("dish_description")
	}
	price = strings.TrimSpace(price)
	if price == "" {
		return 0, missingField("dish_price")
	}
	value, err := strconv.ParseFloat(price, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ValidationError{Field: "dish_price", Message: "must be a number"}
	}
	if value < 0 {
		return 0, &ValidationError{Field: "dish_price", Message: "must not be negative"}
	}

	dish := models.Dish{Name: name, Description: description, Price: value}
	if err := s.dishes.Create(ctx, &dish); err != nil {
		return 0, fmt.Errorf("create dish: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, dishListCacheKey); err != nil {
			utils.ErrorLogger.Printf("Error invalidating dish cache: %v", err)
		}
	}

	utils.InfoLogger.WithField("dish_id", dish.ID).Infof("Dish added: %s", dish.Name)
	return dish.ID, nil
}

// ListDishes returns every dish, read through the cache when one is set.
func (s *CatalogService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	if s.cache != nil {
		var cached []models.Dish
		found, err := s.cache.Get(ctx, dishListCacheKey, &cached)
		if err != nil {
			utils.ErrorLogger.Printf("Error reading dish cache: %v", err)
		} else if found {
			return cached, nil
		}
	}

	dishes, err := s.dishes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dishListCacheKey, dishes, s.ttl); err != nil {
			utils.ErrorLogger.Printf("Error writing dish cache: %v", err)
		}
	}
	return dishes, nil
}
