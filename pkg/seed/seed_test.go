package seed

import (
	"context"
	"testing"

	"github.com/casuarinas/backend/pkg/config"
	"github.com/casuarinas/backend/pkg/models"
	"github.com/casuarinas/backend/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	require.NoError(t, Run(ctx, repo, DefaultCatalog(), zap.NewNop()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCatalog())), count)

	// Spot-check a known catalog entry
	matches, err := repo.FindByName(ctx, "Huevos 24")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 360.0, matches[0].Price)
	assert.True(t, matches[0].Active)
	assert.False(t, matches[0].Created.IsZero())
}

func TestRunLeavesNonEmptyStoreAlone(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	custom := models.Product{Name: "Dulce de leche", Price: 250, Active: true}
	require.NoError(t, repo.Save(ctx, &custom))

	require.NoError(t, Run(ctx, repo, DefaultCatalog(), zap.NewNop()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "a customized catalog must stay untouched")
}

func TestRunIsOneShot(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	require.NoError(t, Run(ctx, repo, DefaultCatalog(), zap.NewNop()))
	require.NoError(t, Run(ctx, repo, DefaultCatalog(), zap.NewNop()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCatalog())), count)
}

func TestCatalogConfigOverride(t *testing.T) {
	catalog := Catalog(&config.SeedConfig{
		Catalog: []config.SeedProduct{
			{Name: "Huevos 6", Price: 120, Category: "Huevos", Unit: "media docena"},
		},
	})
	require.Len(t, catalog, 1)
	assert.Equal(t, "Huevos 6", catalog[0].Name)

	// Empty config falls back to the default catalog
	assert.Len(t, Catalog(&config.SeedConfig{}), len(DefaultCatalog()))
	assert.Len(t, Catalog(nil), len(DefaultCatalog()))
}
