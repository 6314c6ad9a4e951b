// Package repository holds the persistence interfaces the services consume
// and their gorm implementations.
package repository

import (
	"context"
	"errors"

	"github.com/lin-avraham/Pizza2/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned when a row looked up by key does not exist.
var ErrRecordNotFound = errors.New("record not found")

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type DishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	List(ctx context.Context) ([]models.Dish, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	List(ctx context.Context) ([]models.Review, error)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}
