package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/casuarinas/backend/pkg/models"
)

// In-memory repositories with the same contract as the gorm ones, used by
// the handler and seed tests. Rows keep insertion order; ids are assigned
// sequentially on first save.

type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   uint64
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{nextID: 1}
}

func (r *MemoryProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Product(nil), r.products...), nil
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id uint64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryProductRepository) Save(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
		product.Created = now
		product.Updated = now
		r.products = append(r.products, *product)
		return nil
	}

	for i, p := range r.products {
		if p.ID == product.ID {
			product.Created = p.Created
			product.Updated = now
			r.products[i] = *product
			return nil
		}
	}

	if product.Created.IsZero() {
		product.Created = now
	}
	product.Updated = now
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) DeleteByID(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return containsFold(p.Name, name)
	}), nil
}

func (r *MemoryProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return p.Category == category
	}), nil
}

func (r *MemoryProductRepository) FindActive(ctx context.Context) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return p.Active
	}), nil
}

func (r *MemoryProductRepository) FindByNameActive(ctx context.Context, name string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return p.Active && containsFold(p.Name, name)
	}), nil
}

func (r *MemoryProductRepository) FindByCategoryActive(ctx context.Context, category string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return p.Active && p.Category == category
	}), nil
}

func (r *MemoryProductRepository) FindByNameCategoryActive(ctx context.Context, name, category string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return p.Active && p.Category == category && containsFold(p.Name, name)
	}), nil
}

func (r *MemoryProductRepository) filter(match func(models.Product) bool) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []models.Product{}
	for _, p := range r.products {
		if match(p) {
			result = append(result, p)
		}
	}
	return result
}

type MemoryClientRepository struct {
	mu      sync.RWMutex
	clients []models.Client
	nextID  uint64
}

func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{nextID: 1}
}

func (r *MemoryClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Client(nil), r.clients...), nil
}

func (r *MemoryClientRepository) FindByID(ctx context.Context, id uint64) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryClientRepository) Save(ctx context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == 0 {
		client.ID = r.nextID
		r.nextID++
		r.clients = append(r.clients, *client)
		return nil
	}
	for i, c := range r.clients {
		if c.ID == client.ID {
			r.clients[i] = *client
			return nil
		}
	}
	if client.ID >= r.nextID {
		r.nextID = client.ID + 1
	}
	r.clients = append(r.clients, *client)
	return nil
}

func (r *MemoryClientRepository) DeleteByID(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryClientRepository) FindByLocality(ctx context.Context, locality string) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []models.Client{}
	for _, c := range r.clients {
		if c.Locality == locality {
			result = append(result, c)
		}
	}
	return result, nil
}

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID uint64
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{nextID: 1}
}

func (r *MemoryOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Order(nil), r.orders...), nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id uint64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryOrderRepository) Save(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
		r.orders = append(r.orders, *order)
		return nil
	}
	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = *order
			return nil
		}
	}
	if order.ID >= r.nextID {
		r.nextID = order.ID + 1
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) DeleteByID(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryOrderRepository) FindByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool {
		return !o.Created.Before(start) && !o.Created.After(end)
	}), nil
}

func (r *MemoryOrderRepository) FindByMinTotal(ctx context.Context, minTotal float64) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool {
		return o.Total >= minTotal
	}), nil
}

func (r *MemoryOrderRepository) FindByClientName(ctx context.Context, clientName string) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool {
		return containsFold(o.ClientName, clientName)
	}), nil
}

func (r *MemoryOrderRepository) FindByLocality(ctx context.Context, locality string) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool {
		return o.Locality == locality
	}), nil
}

func (r *MemoryOrderRepository) FindByClientNameAndLocality(ctx context.Context, clientName, locality string) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool {
		return o.Locality == locality && containsFold(o.ClientName, clientName)
	}), nil
}

func (r *MemoryOrderRepository) filter(match func(models.Order) bool) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []models.Order{}
	for _, o := range r.orders {
		if match(o) {
			result = append(result, o)
		}
	}
	return result
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
