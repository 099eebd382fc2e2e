package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InventoryUseCase consulta y mantenimiento de insumos del spa.
type InventoryUseCase struct {
	store Store
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(store Store) *InventoryUseCase {
	return &InventoryUseCase{store: store}
}

// ToDTO resuelve estado, flags y valor del stock de un ítem.
func ToDTO(it entity.InventoryItem) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		InventoryItem: it,
		Status:        it.StockStatus(),
		IsLowStock:    it.IsLowStock(),
		IsOutOfStock:  it.IsOutOfStock(),
		StockValue:    it.StockValue(),
	}
}

// GetOverview ítems agrupados por categoría con contadores de alerta y valor total.
func (uc *InventoryUseCase) GetOverview(ctx context.Context) (*dto.InventoryOverviewDTO, error) {
	items := uc.store.Snapshot().Inventory
	rows := make([]dto.InventoryItemDTO, 0, len(items))
	out := &dto.InventoryOverviewDTO{TotalItems: len(items), TotalValue: decimal.Zero}
	for _, it := range items {
		row := ToDTO(it)
		rows = append(rows, row)
		out.TotalValue = out.TotalValue.Add(row.StockValue)
		if row.IsLowStock {
			out.LowStockCount++
		}
		if row.IsOutOfStock {
			out.CriticalCount++
		}
	}
	out.Categories = analytics.GroupByCategory(rows, func(r dto.InventoryItemDTO) string { return r.Category })
	return out, nil
}

// LowStock ítems bajo el mínimo o sin existencias, en el orden del store.
func (uc *InventoryUseCase) LowStock(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	out := []dto.InventoryItemDTO{}
	for _, it := range uc.store.Snapshot().Inventory {
		if it.IsLowStock() || it.IsOutOfStock() {
			out = append(out, ToDTO(it))
		}
	}
	return out, nil
}

// Create registra un ítem nuevo.
func (uc *InventoryUseCase) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryItemDTO, error) {
	it, err := uc.store.AddInventoryItem(entity.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		return nil, err
	}
	row := ToDTO(it)
	return &row, nil
}

// Update aplica una actualización parcial.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, req dto.UpdateInventoryRequest) (*dto.InventoryItemDTO, error) {
	it, err := uc.store.UpdateInventoryItem(id, repository.InventoryPatch{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		return nil, err
	}
	row := ToDTO(it)
	return &row, nil
}

// Delete elimina un ítem.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteInventoryItem(id)
}

// AdjustStock suma delta al stock actual; el resultado nunca baja de cero.
func (uc *InventoryUseCase) AdjustStock(ctx context.Context, id string, delta int) (*dto.InventoryItemDTO, error) {
	var current *entity.InventoryItem
	for _, it := range uc.store.Snapshot().Inventory {
		if it.ID == id {
			current = &it
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("inventario %s: %w", id, domain.ErrNotFound)
	}
	next := max(current.CurrentStock+delta, 0)
	return uc.Update(ctx, id, dto.UpdateInventoryRequest{CurrentStock: &next})
}
