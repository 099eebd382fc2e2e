package entity_test

import (
	"testing"

	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestInventoryItem_StockStatus(t *testing.T) {
	cases := []struct {
		name         string
		current, min int
		low, crit    bool
		status       entity.StockStatus
	}{
		{"sin stock con mínimo", 0, 10, true, true, entity.StockCritical},
		{"bajo el mínimo", 5, 10, true, false, entity.StockLow},
		{"igual al mínimo es normal", 10, 10, false, false, entity.StockNormal},
		{"sobre el mínimo", 12, 10, false, false, entity.StockNormal},
		{"sin stock y sin mínimo", 0, 0, false, true, entity.StockCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := entity.InventoryItem{CurrentStock: tc.current, MinStock: tc.min}
			assert.Equal(t, tc.low, it.IsLowStock())
			assert.Equal(t, tc.crit, it.IsOutOfStock())
			assert.Equal(t, tc.status, it.StockStatus())
		})
	}
}
