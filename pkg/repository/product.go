package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/casuarinas/backend/pkg/models"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Save upserts by id. Created is set once on insert and preserved from the
// stored row on update; Updated is stamped on every save, no-op saves
// included.
func (r *GormProductRepository) Save(ctx context.Context, product *models.Product) error {
	now := time.Now()

	if product.ID == 0 {
		product.Created = now
		product.Updated = now
		return r.db.WithContext(ctx).Create(product).Error
	}

	existing, err := r.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		if product.Created.IsZero() {
			product.Created = now
		}
		product.Updated = now
		return r.db.WithContext(ctx).Create(product).Error
	}

	product.Created = existing.Created
	product.Updated = now
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) DeleteByID(ctx context.Context, id uint64) error {
	// Deleting an absent row is a no-op, not an error.
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", likePattern(name)).
		Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByNameActive(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? AND active = ?", likePattern(name), true).
		Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByCategoryActive(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND active = ?", category, true).
		Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByNameCategoryActive(ctx context.Context, name, category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? AND category = ? AND active = ?", likePattern(name), category, true).
		Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// likePattern builds the case-insensitive contains pattern. An empty query
// becomes %% and matches every row.
func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}
