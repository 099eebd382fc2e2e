package entity

import "github.com/shopspring/decimal"

// StockStatus nivel de alerta de un ítem de inventario.
type StockStatus string

const (
	StockCritical StockStatus = "critical" // sin existencias
	StockLow      StockStatus = "low"      // por debajo del mínimo
	StockNormal   StockStatus = "normal"
)

// InventoryItem representa un insumo del spa (aceites, lencería, equipos...).
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock int             `json:"currentStock"`
	MinStock     int             `json:"minStock"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// IsLowStock es estrictamente menor al mínimo: stock igual al mínimo es normal.
func (i InventoryItem) IsLowStock() bool { return i.CurrentStock < i.MinStock }

// IsOutOfStock condición crítica, independiente de IsLowStock.
func (i InventoryItem) IsOutOfStock() bool { return i.CurrentStock == 0 }

// StockStatus combina ambos predicados: critical > low > normal.
func (i InventoryItem) StockStatus() StockStatus {
	switch {
	case i.IsOutOfStock():
		return StockCritical
	case i.IsLowStock():
		return StockLow
	default:
		return StockNormal
	}
}

// StockValue valor del stock actual (CurrentStock × PricePerUnit).
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.PricePerUnit.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}
