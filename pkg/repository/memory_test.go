package repository

import (
	"context"
	"testing"
	"time"

	"github.com/casuarinas/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductSaveStampsTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	product := models.Product{Name: "Miel", Price: 330, Category: "Miel", Unit: "1kg", Active: true}
	require.NoError(t, repo.Save(ctx, &product))
	require.NotZero(t, product.ID)

	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Miel", stored.Name)
	assert.False(t, stored.Created.IsZero())
	assert.Equal(t, stored.Created, stored.Updated)

	prevUpdated := stored.Updated
	time.Sleep(time.Millisecond)

	stored.Price = 350
	require.NoError(t, repo.Save(ctx, stored))

	after, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, 350.0, after.Price)
	assert.Equal(t, product.Created, after.Created, "created must never change")
	assert.True(t, after.Updated.After(prevUpdated), "updated must advance on every save")
}

func TestMemoryProductNoOpSaveStillTouches(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	product := models.Product{Name: "Huevos 12", Active: true}
	require.NoError(t, repo.Save(ctx, &product))

	prev, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	same := *prev
	require.NoError(t, repo.Save(ctx, &same))

	after, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, after.Updated.After(prev.Updated))
}

func TestMemoryProductNameQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	seedRows := []models.Product{
		{Name: "Queso Llanero 400g", Category: "Quesos", Active: true},
		{Name: "Queso Colonia 400g", Category: "Quesos", Active: false},
		{Name: "Miel", Category: "Miel", Active: true},
	}
	for i := range seedRows {
		require.NoError(t, repo.Save(ctx, &seedRows[i]))
	}

	// Case-insensitive substring, active-irrelevant
	matches, err := repo.FindByName(ctx, "QUESO")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// Active subset
	active, err := repo.FindByNameActive(ctx, "queso")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Queso Llanero 400g", active[0].Name)

	// Empty query matches everything
	all, err := repo.FindByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	combo, err := repo.FindByNameCategoryActive(ctx, "queso", "Quesos")
	require.NoError(t, err)
	require.Len(t, combo, 1)
	assert.Equal(t, "Queso Llanero 400g", combo[0].Name)
}

func TestMemoryProductDeleteAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	require.NoError(t, repo.DeleteByID(ctx, 99))

	stored, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestMemoryProductUpsertWithExplicitID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	product := models.Product{ID: 7, Name: "Huevos 30", Active: true}
	require.NoError(t, repo.Save(ctx, &product))

	stored, err := repo.FindByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Huevos 30", stored.Name)

	// Next generated id must not collide
	next := models.Product{Name: "Huevos 12", Active: true}
	require.NoError(t, repo.Save(ctx, &next))
	assert.Greater(t, next.ID, uint64(7))
}

func TestMemoryOrderQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderRepository()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.Order{
		{ClientName: "Ana García", Locality: "Pocitos", Total: 500, Created: base},
		{ClientName: "Beatriz Pérez", Locality: "Carrasco", Total: 900, Created: base.Add(24 * time.Hour)},
		{ClientName: "ana maría", Locality: "Carrasco", Total: 300, Created: base.Add(48 * time.Hour)},
	}
	for i := range rows {
		require.NoError(t, repo.Save(ctx, &rows[i]))
	}

	byName, err := repo.FindByClientName(ctx, "ANA")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	combined, err := repo.FindByClientNameAndLocality(ctx, "ana", "Carrasco")
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "ana maría", combined[0].ClientName)

	// Range is inclusive on both ends
	ranged, err := repo.FindByCreatedBetween(ctx, base, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	totals, err := repo.FindByMinTotal(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, totals, 2)
}

func TestMemoryClientLocality(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClientRepository()

	rows := []models.Client{
		{Name: "Ana", Locality: "Pocitos"},
		{Name: "Bruno", Locality: "Solymar/La Tahona"},
	}
	for i := range rows {
		require.NoError(t, repo.Save(ctx, &rows[i]))
	}

	found, err := repo.FindByLocality(ctx, "Pocitos")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ana", found[0].Name)

	none, err := repo.FindByLocality(ctx, "Centro")
	require.NoError(t, err)
	assert.Empty(t, none)
}
