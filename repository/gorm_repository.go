package repository

import (
	"context"

	"github.com/lin-avraham/Pizza2/models"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

type GormDishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{DB: db}
}

func (r *GormDishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return r.DB.WithContext(ctx).Create(dish).Error
}

func (r *GormDishRepository) List(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.DB.WithContext(ctx).Order("id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

type GormOrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{DB: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *GormOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type GormReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{DB: db}
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *GormReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.DB.WithContext(ctx).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
