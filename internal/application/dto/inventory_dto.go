package dto

import (
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:id (parcial).
type UpdateInventoryRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Unit         *string          `json:"unit"`
	CurrentStock *int             `json:"current_stock"`
	MinStock     *int             `json:"min_stock"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

// AdjustStockRequest body para POST /api/inventory/:id/adjust (+1 / -1 desde la UI).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// InventoryItemDTO ítem con su estado de stock ya resuelto.
type InventoryItemDTO struct {
	entity.InventoryItem
	Status       entity.StockStatus `json:"status"` // critical | low | normal
	IsLowStock   bool               `json:"is_low_stock"`
	IsOutOfStock bool               `json:"is_out_of_stock"`
	StockValue   decimal.Decimal    `json:"stock_value"`
}

// InventoryOverviewDTO respuesta de GET /api/inventory.
type InventoryOverviewDTO struct {
	Categories    []CategoryGroup[InventoryItemDTO] `json:"categories"`
	TotalItems    int                               `json:"total_items"`
	LowStockCount int                               `json:"low_stock_count"`
	CriticalCount int                               `json:"critical_count"`
	TotalValue    decimal.Decimal                   `json:"total_value"`
}
