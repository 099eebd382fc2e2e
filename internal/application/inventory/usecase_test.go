package inventory_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/application/inventory"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/infrastructure/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newUseCase(t *testing.T) (*inventory.InventoryUseCase, *memstore.Store) {
	t.Helper()
	store, err := memstore.New(&entity.Snapshot{
		Inventory: []entity.InventoryItem{
			{ID: "inv-1", Name: "Minyak Kelapa", Category: "Oil", Unit: "botol", CurrentStock: 2, MinStock: 5, PricePerUnit: dec(40000)},
			{ID: "inv-2", Name: "Handuk", Category: "Linen", Unit: "pcs", CurrentStock: 10, MinStock: 10, PricePerUnit: dec(15000)},
			{ID: "inv-3", Name: "Minyak Lavender", Category: "Oil", Unit: "botol", CurrentStock: 0, MinStock: 0, PricePerUnit: dec(60000)},
		},
	})
	require.NoError(t, err)
	return inventory.NewInventoryUseCase(store), store
}

func TestGetOverview(t *testing.T) {
	uc, _ := newUseCase(t)

	o, err := uc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, o.TotalItems)
	assert.Equal(t, 1, o.LowStockCount, "stock igual al mínimo no es bajo")
	assert.Equal(t, 1, o.CriticalCount, "sin existencias es crítico aunque el mínimo sea 0")
	assert.True(t, o.TotalValue.Equal(dec(80000+150000)))

	require.Len(t, o.Categories, 2)
	assert.Equal(t, "Oil", o.Categories[0].Category)
	require.Len(t, o.Categories[0].Items, 2)
	assert.Equal(t, "inv-1", o.Categories[0].Items[0].ID)
	assert.Equal(t, entity.StockLow, o.Categories[0].Items[0].Status)
	assert.Equal(t, entity.StockCritical, o.Categories[0].Items[1].Status)
	assert.Equal(t, entity.StockNormal, o.Categories[1].Items[0].Status)
}

func TestLowStock(t *testing.T) {
	uc, _ := newUseCase(t)
	got, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "inv-1", got[0].ID)
	assert.Equal(t, "inv-3", got[1].ID)
}

func TestAdjustStock_NoBajaDeCero(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	got, err := uc.AdjustStock(ctx, "inv-1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentStock)
	assert.True(t, got.IsOutOfStock)

	got, err = uc.AdjustStock(ctx, "inv-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentStock)
	assert.Equal(t, uint64(2), store.Snapshot().Version)

	_, err = uc.AdjustStock(ctx, "inv-x", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateUpdateDelete(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateInventoryRequest{Name: "Lulur", Category: "Scrub", Unit: "kg", CurrentStock: 3, MinStock: 2, PricePerUnit: dec(90000)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.StockValue.Equal(dec(270000)))

	minStock := 5
	updated, err := uc.Update(ctx, created.ID, dto.UpdateInventoryRequest{MinStock: &minStock})
	require.NoError(t, err)
	assert.True(t, updated.IsLowStock)
	assert.Equal(t, "Lulur", updated.Name)

	_, err = uc.Create(ctx, dto.CreateInventoryRequest{Name: "Roto", CurrentStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Len(t, store.Snapshot().Inventory, 3)
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}
