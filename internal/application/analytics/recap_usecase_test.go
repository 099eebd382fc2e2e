package analytics_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recapBookings() []entity.Booking {
	return []entity.Booking{
		booking("bk-1", "br-a", "svc-1", "th-1", "2026-10-15", "10:00", entity.BookingCompleted),
		booking("bk-2", "br-a", "svc-2", "th-2", "2026-10-15", "11:00", entity.BookingCompleted),
		booking("bk-3", "br-a", "svc-1", "th-1", "2026-10-15", "12:00", entity.BookingPending),
		booking("bk-4", "br-b", "svc-2", "th-2", "2026-10-15", "10:00", entity.BookingCompleted),
		booking("bk-5", "br-a", "svc-3", "th-1", "2026-10-02", "10:00", entity.BookingCompleted),
	}
}

func TestGetDailyRecap_UnaSucursal(t *testing.T) {
	uc := analytics.NewRecapUseCase(newStore(t, recapBookings()...), clock, dec(30))

	r, err := uc.GetDailyRecap(context.Background(), "br-a", "")
	require.NoError(t, err)

	assert.Equal(t, "Branch A", r.BranchName)
	assert.Equal(t, dto.PeriodDTO{StartDate: "2026-10-15", EndDate: "2026-10-15"}, r.Period)
	assert.Equal(t, 2, r.BookingCount)
	assert.True(t, r.TotalRevenue.Equal(dec(600000)))
	assert.True(t, r.TotalIncentives.Equal(dec(135000)))
	assert.True(t, r.NetProfit.Equal(dec(465000)))
	require.True(t, r.MarginPct.Valid)
	assert.True(t, r.MarginPct.Decimal.Equal(decimal.RequireFromString("77.5")))

	assert.True(t, r.ProfitSharing.SpaAmount.Equal(dec(139500)))
	assert.True(t, r.ProfitSharing.HotelAmount.Equal(dec(325500)))
	assert.True(t, r.ProfitSharing.HotelPercent.Equal(dec(70)))
	assert.Empty(t, r.BranchSplits)

	require.Len(t, r.ServiceBreakdown, 2)
	assert.Equal(t, "svc-1", r.ServiceBreakdown[0].ServiceID)
	require.Len(t, r.TherapistPerformance, 2)
	assert.Equal(t, "th-1", r.TherapistPerformance[0].TherapistID)
	assert.True(t, r.TherapistPerformance[0].TotalIncentive.Equal(dec(75000)))
}

func TestGetDailyRecap_TodasLasSucursales(t *testing.T) {
	uc := analytics.NewRecapUseCase(newStore(t, recapBookings()...), clock, dec(30))

	r, err := uc.GetDailyRecap(context.Background(), "all", "2026-10-15")
	require.NoError(t, err)

	assert.Equal(t, analytics.AllBranchesName, r.BranchName)
	assert.True(t, r.NetProfit.Equal(dec(655000)))
	require.Len(t, r.BranchSplits, 2)
	assert.True(t, r.BranchSplits[0].Split.SpaAmount.Equal(dec(139500)))
	assert.True(t, r.BranchSplits[1].Split.SpaAmount.Equal(dec(76000)))

	s := r.ProfitSharing
	assert.True(t, s.SpaAmount.Equal(dec(215500)))
	assert.True(t, s.SpaAmount.Add(s.HotelAmount).Equal(r.NetProfit), "el reparto debe sumar la utilidad exacta")
	assert.True(t, s.SpaPercent.Equal(decimal.RequireFromString("32.9")), "porcentaje efectivo %s", s.SpaPercent)
}

func TestGetDailyRecap_SucursalDesconocidaUsaDefault(t *testing.T) {
	bookings := []entity.Booking{
		booking("bk-1", "br-cerrada", "svc-2", "th-2", "2026-10-15", "10:00", entity.BookingCompleted),
	}
	uc := analytics.NewRecapUseCase(newStore(t, bookings...), clock, dec(30))

	r, err := uc.GetDailyRecap(context.Background(), "br-cerrada", "")
	require.NoError(t, err)
	assert.Empty(t, r.BranchName)
	assert.True(t, r.ProfitSharing.SpaPercent.Equal(dec(30)))
	assert.True(t, r.ProfitSharing.SpaAmount.Equal(dec(57000)))

	all, err := uc.GetDailyRecap(context.Background(), "all", "")
	require.NoError(t, err)
	require.Len(t, all.BranchSplits, 3)
	assert.Equal(t, "br-cerrada", all.BranchSplits[2].BranchID)
	assert.True(t, all.ProfitSharing.SpaAmount.Equal(dec(57000)))
}

func TestGetDailyRecap_SucursalConCeroPorCiento(t *testing.T) {
	snap := baseSnapshot()
	snap.Branches[0].ProfitSharingPercent = decimal.Zero
	snap.Bookings = []entity.Booking{booking("bk-1", "br-a", "svc-2", "th-2", "2026-10-15", "10:00", entity.BookingCompleted)}
	uc := analytics.NewRecapUseCase(staticStore{snap}, clock, dec(30))

	r, err := uc.GetDailyRecap(context.Background(), "br-a", "")
	require.NoError(t, err)
	assert.True(t, r.ProfitSharing.SpaAmount.IsZero())
	assert.True(t, r.ProfitSharing.HotelAmount.Equal(r.NetProfit))
}

func TestGetDailyRecap_SinReservas(t *testing.T) {
	uc := analytics.NewRecapUseCase(newStore(t), clock, dec(30))

	r, err := uc.GetDailyRecap(context.Background(), "br-a", "")
	require.NoError(t, err)
	assert.Zero(t, r.BookingCount)
	assert.True(t, r.TotalRevenue.IsZero())
	assert.False(t, r.MarginPct.Valid)
	assert.True(t, r.ProfitSharing.SpaAmount.IsZero())
	assert.NotNil(t, r.ServiceBreakdown)
	assert.NotNil(t, r.TherapistPerformance)
}

func TestGetIncomeBreakdown_RangoPorDefectoMesEnCurso(t *testing.T) {
	uc := analytics.NewRecapUseCase(newStore(t, recapBookings()...), clock, dec(30))

	r, err := uc.GetIncomeBreakdown(context.Background(), dto.RecapRequest{BranchID: "br-a"})
	require.NoError(t, err)
	assert.Equal(t, dto.PeriodDTO{StartDate: "2026-10-01", EndDate: "2026-10-15"}, r.Period)
	assert.Equal(t, 3, r.BookingCount)
	assert.True(t, r.TotalRevenue.Equal(dec(1100000)))
	assert.Equal(t, "svc-3", r.ServiceBreakdown[0].ServiceID)

	_, err = uc.GetIncomeBreakdown(context.Background(), dto.RecapRequest{StartDate: "2026-10-20", EndDate: "2026-10-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// staticStore sirve un snapshot fijo sin pasar por la validación del store.
type staticStore struct{ snap *entity.Snapshot }

func (s staticStore) Snapshot() *entity.Snapshot { return s.snap }
