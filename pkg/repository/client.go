package repository

import (
	"context"
	"errors"

	"github.com/casuarinas/backend/pkg/models"
	"gorm.io/gorm"
)

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormClientRepository) FindByID(ctx context.Context, id uint64) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) Save(ctx context.Context, client *models.Client) error {
	if client.ID == 0 {
		return r.db.WithContext(ctx).Create(client).Error
	}

	existing, err := r.FindByID(ctx, client.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(client).Error
	}
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *GormClientRepository) DeleteByID(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}

func (r *GormClientRepository) FindByLocality(ctx context.Context, locality string) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).
		Where("locality = ?", locality).
		Order("id").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
