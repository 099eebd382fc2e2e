package finance

import (
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Totals ingresos, incentivos y utilidad de un conjunto de reservas.
type Totals struct {
	Revenue      decimal.Decimal
	Incentives   decimal.Decimal
	NetProfit    decimal.Decimal
	BookingCount int
}

// Totals calcula los tres montos en una sola llamada sobre el índice.
func (ix *Index) Totals(bookings []entity.Booking) Totals {
	revenue := ix.Revenue(bookings)
	incentives := ix.Incentives(bookings)
	return Totals{
		Revenue:      revenue,
		Incentives:   incentives,
		NetProfit:    NetProfit(revenue, incentives),
		BookingCount: len(bookings),
	}
}
