package repository

import (
	"context"
	"time"

	"github.com/casuarinas/backend/pkg/models"
)

// ProductRepository is the data-access contract for products. Finders return
// rows in insertion order; FindByID returns (nil, nil) when the row is
// absent. Save upserts by id and owns the created/updated stamping.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint64) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)

	FindByName(ctx context.Context, name string) ([]models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindActive(ctx context.Context) ([]models.Product, error)
	FindByNameActive(ctx context.Context, name string) ([]models.Product, error)
	FindByCategoryActive(ctx context.Context, category string) ([]models.Product, error)
	FindByNameCategoryActive(ctx context.Context, name, category string) ([]models.Product, error)
}

type ClientRepository interface {
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id uint64) (*models.Client, error)
	Save(ctx context.Context, client *models.Client) error
	DeleteByID(ctx context.Context, id uint64) error

	FindByLocality(ctx context.Context, locality string) ([]models.Client, error)
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uint64) (*models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	DeleteByID(ctx context.Context, id uint64) error

	FindByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Order, error)
	FindByMinTotal(ctx context.Context, minTotal float64) ([]models.Order, error)
	FindByClientName(ctx context.Context, clientName string) ([]models.Order, error)
	FindByLocality(ctx context.Context, locality string) ([]models.Order, error)
	FindByClientNameAndLocality(ctx context.Context, clientName, locality string) ([]models.Order, error)
}
