package repository

import (
	"context"
	"errors"
	"time"

	"github.com/casuarinas/backend/pkg/models"
	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint64) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) Save(ctx context.Context, order *models.Order) error {
	if order.ID == 0 {
		return r.db.WithContext(ctx).Create(order).Error
	}

	existing, err := r.FindByID(ctx, order.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(order).Error
	}
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *GormOrderRepository) DeleteByID(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Order{}, id).Error
}

// FindByCreatedBetween is inclusive on both ends.
func (r *GormOrderRepository) FindByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("created BETWEEN ? AND ?", start, end).
		Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByMinTotal(ctx context.Context, minTotal float64) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("total >= ?", minTotal).
		Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByClientName(ctx context.Context, clientName string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("LOWER(client_name) LIKE ?", likePattern(clientName)).
		Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByLocality(ctx context.Context, locality string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("locality = ?", locality).
		Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByClientNameAndLocality(ctx context.Context, clientName, locality string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("LOWER(client_name) LIKE ? AND locality = ?", likePattern(clientName), locality).
		Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
