// Package seed populates the starter catalog on first boot.
package seed

import (
	"context"
	"fmt"

	"github.com/casuarinas/backend/pkg/config"
	"github.com/casuarinas/backend/pkg/models"
	"github.com/casuarinas/backend/pkg/repository"
	"go.uber.org/zap"
)

// DefaultCatalog is the baseline product set inserted into an empty store.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{Name: "Huevos 12", Price: 220.0, Comment: "Tamaño 12", Category: "Huevos", Unit: "docena"},
		{Name: "Huevos 15", Price: 250.0, Comment: "Tamaño 15", Category: "Huevos", Unit: "docena"},
		{Name: "Huevos 24", Price: 360.0, Comment: "Tamaño 24", Category: "Huevos", Unit: "docena"},
		{Name: "Huevos 30", Price: 390.0, Comment: "Tamaño 30", Category: "Huevos", Unit: "docena"},
		{Name: "Yogur griego 550mL", Price: 310.0, Comment: "1 unidad 550mL", Category: "Lácteos", Unit: "unidad"},
		{Name: "Queso Llanero 400g", Price: 180.0, Comment: "Llanero", Category: "Quesos", Unit: "400g"},
		{Name: "Queso Parmesano 400g", Price: 310.0, Comment: "Parmesano", Category: "Quesos", Unit: "400g"},
		{Name: "Queso Ricotta 400g", Price: 75.0, Comment: "Ricotta", Category: "Quesos", Unit: "400g"},
		{Name: "Queso Dambo 400g", Price: 230.0, Comment: "Dambo", Category: "Quesos", Unit: "400g"},
		{Name: "Queso Colonia 400g", Price: 250.0, Comment: "Colonia", Category: "Quesos", Unit: "400g"},
		{Name: "Queso Parrillero 400g", Price: 280.0, Comment: "Parrillero", Category: "Quesos", Unit: "400g"},
		{Name: "Miel", Price: 330.0, Comment: "1kg", Category: "Miel", Unit: "1kg"},
	}
}

// Catalog resolves the configured catalog, falling back to the default one
// when the config section is empty.
func Catalog(cfg *config.SeedConfig) []models.Product {
	if cfg == nil || len(cfg.Catalog) == 0 {
		return DefaultCatalog()
	}
	catalog := make([]models.Product, len(cfg.Catalog))
	for i, p := range cfg.Catalog {
		catalog[i] = models.Product{
			Name:     p.Name,
			Price:    p.Price,
			Comment:  p.Comment,
			Category: p.Category,
			Unit:     p.Unit,
		}
	}
	return catalog
}

// Run inserts the catalog when the product table is completely empty and
// does nothing otherwise. It only ever checks count == 0, so a partially
// seeded or customized catalog is left untouched.
func Run(ctx context.Context, repo repository.ProductRepository, catalog []models.Product, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		logger.Info("Product table not empty, skipping seed", zap.Int64("count", count))
		return nil
	}

	for i := range catalog {
		product := catalog[i]
		product.ID = 0
		product.Active = true
		if err := repo.Save(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}

	logger.Info("Seeded starter catalog", zap.Int("products", len(catalog)))
	return nil
}
