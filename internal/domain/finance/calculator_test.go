package finance_test

import (
	"testing"

	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func fixtureServices() []entity.Service {
	return []entity.Service{
		{ID: "svc-001", Name: "Balinese Massage", Category: "Massage", DurationMinutes: 60, Price: dec(350000)},
		{ID: "svc-002", Name: "Hot Stone", Category: "Massage", DurationMinutes: 90, Price: dec(500000)},
		{ID: "svc-003", Name: "Facial", Category: "Facial", DurationMinutes: 45, Price: dec(250000)},
	}
}

func fixtureTherapists() []entity.Therapist {
	return []entity.Therapist{
		{ID: "th-001", Name: "Made", HourlyIncentive: dec(50000)},
		{ID: "th-002", Name: "Wayan", HourlyIncentive: dec(60000)},
	}
}

func completed(id, serviceID, therapistID string) entity.Booking {
	return entity.Booking{ID: id, ServiceID: serviceID, TherapistID: therapistID, Status: entity.BookingCompleted}
}

// ──────────────────────────────────────────────────────────────────────────────
// Incentivos y utilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestTherapistIncentive_HoraFraccionaria(t *testing.T) {
	got := finance.TherapistIncentive(90, dec(50000))
	assert.True(t, got.Equal(dec(75000)), "90 minutos deben pagar 1.5 horas, got %s", got)

	got = finance.TherapistIncentive(45, dec(60000))
	assert.True(t, got.Equal(dec(45000)), "45 minutos deben pagar 0.75 horas, got %s", got)
}

func TestNetProfit_PuedeSerNegativo(t *testing.T) {
	assert.True(t, finance.NetProfit(dec(100), dec(250)).Equal(dec(-150)))
	assert.True(t, finance.NetProfit(dec(350000), dec(50000)).Equal(dec(300000)))
}

func TestSingleCompletedBooking(t *testing.T) {
	services := fixtureServices()
	therapists := fixtureTherapists()
	bookings := []entity.Booking{completed("bk-1", "svc-001", "th-001")}

	revenue := finance.TotalRevenue(bookings, services)
	incentives := finance.TotalIncentives(bookings, services, therapists)

	assert.True(t, revenue.Equal(dec(350000)), "revenue %s", revenue)
	assert.True(t, incentives.Equal(dec(50000)), "incentives %s", incentives)
	assert.True(t, finance.NetProfit(revenue, incentives).Equal(dec(300000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reparto de utilidades
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitSharing_SumaExacta(t *testing.T) {
	cases := []struct {
		net     decimal.Decimal
		percent decimal.Decimal
	}{
		{dec(300000), dec(30)},
		{dec(1000001), dec(35)},
		{decimal.RequireFromString("333333.33"), decimal.RequireFromString("33.3")},
		{dec(-125000), dec(40)},
		{dec(0), dec(30)},
		{dec(987654), dec(0)},
		{dec(987654), dec(100)},
	}
	for _, tc := range cases {
		split := finance.ProfitSharing(tc.net, tc.percent)
		assert.True(t, split.SpaAmount.Add(split.HotelAmount).Equal(tc.net),
			"spa + hotel debe ser exactamente %s (spa=%s hotel=%s)", tc.net, split.SpaAmount, split.HotelAmount)
		assert.True(t, split.HotelPercent.Equal(dec(100).Sub(tc.percent)))
		assert.True(t, split.SpaPercent.Equal(tc.percent))
	}
}

func TestProfitSharing_Montos(t *testing.T) {
	split := finance.ProfitSharing(dec(300000), dec(30))
	assert.True(t, split.SpaAmount.Equal(dec(90000)))
	assert.True(t, split.HotelAmount.Equal(dec(210000)))
	assert.True(t, split.HotelPercent.Equal(dec(70)))
}

func TestMarginPercent_IngresoCeroEsNulo(t *testing.T) {
	m := finance.MarginPercent(dec(0), dec(0))
	assert.False(t, m.Valid)

	m = finance.MarginPercent(dec(300000), dec(400000))
	require.True(t, m.Valid)
	assert.True(t, m.Decimal.Equal(dec(75)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Referencias colgantes y listas vacías
// ──────────────────────────────────────────────────────────────────────────────

func TestEmptyBookings(t *testing.T) {
	services := fixtureServices()
	therapists := fixtureTherapists()

	assert.True(t, finance.TotalRevenue(nil, services).IsZero())
	assert.True(t, finance.TotalIncentives(nil, services, therapists).IsZero())
	perf := finance.TherapistPerformance(nil, services, therapists)
	require.NotNil(t, perf)
	assert.Empty(t, perf)
}

func TestDanglingReferencesContributeZero(t *testing.T) {
	services := fixtureServices()
	therapists := fixtureTherapists()
	bookings := []entity.Booking{
		completed("bk-1", "svc-001", "th-001"),
		completed("bk-2", "svc-deleted", "th-001"),
		completed("bk-3", "svc-002", "th-gone"),
	}

	revenue := finance.TotalRevenue(bookings, services)
	assert.True(t, revenue.Equal(dec(850000)), "svc-deleted aporta 0, got %s", revenue)

	incentives := finance.TotalIncentives(bookings, services, therapists)
	assert.True(t, incentives.Equal(dec(50000)), "solo bk-1 resuelve ambos, got %s", incentives)

	perf := finance.TherapistPerformance(bookings, services, therapists)
	require.Len(t, perf, 1)
	assert.Equal(t, "th-001", perf[0].Therapist.ID)
	assert.Equal(t, 1, perf[0].BookingCount)
}

func TestTotalRevenue_NoFiltraPorEstado(t *testing.T) {
	bookings := []entity.Booking{
		{ID: "bk-1", ServiceID: "svc-001", Status: entity.BookingCancelled},
		{ID: "bk-2", ServiceID: "svc-003", Status: entity.BookingPending},
	}
	assert.True(t, finance.TotalRevenue(bookings, fixtureServices()).Equal(dec(600000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Desempeño por terapeuta
// ──────────────────────────────────────────────────────────────────────────────

func TestTherapistPerformance_OrdenDePrimeraAparicion(t *testing.T) {
	bookings := []entity.Booking{
		completed("bk-1", "svc-003", "th-002"),
		completed("bk-2", "svc-001", "th-001"),
		completed("bk-3", "svc-002", "th-002"),
	}

	perf := finance.TherapistPerformance(bookings, fixtureServices(), fixtureTherapists())
	require.Len(t, perf, 2)

	assert.Equal(t, "th-002", perf[0].Therapist.ID)
	assert.Equal(t, 2, perf[0].BookingCount)
	assert.Equal(t, 135, perf[0].TotalMinutes)
	// 45 min × 60000/h + 90 min × 60000/h = 45000 + 90000
	assert.True(t, perf[0].TotalIncentive.Equal(dec(135000)), "got %s", perf[0].TotalIncentive)

	assert.Equal(t, "th-001", perf[1].Therapist.ID)
	assert.Equal(t, 60, perf[1].TotalMinutes)
}

func TestIndex_PrimerIDDuplicadoGana(t *testing.T) {
	services := []entity.Service{
		{ID: "svc-x", Price: dec(100), DurationMinutes: 60},
		{ID: "svc-x", Price: dec(999), DurationMinutes: 60},
	}
	ix := finance.NewIndex(services, nil)
	s, ok := ix.Service("svc-x")
	require.True(t, ok)
	assert.True(t, s.Price.Equal(dec(100)))
}

func TestIndex_Totals(t *testing.T) {
	ix := finance.NewIndex(fixtureServices(), fixtureTherapists())
	totals := ix.Totals([]entity.Booking{
		completed("bk-1", "svc-001", "th-001"),
		completed("bk-2", "svc-002", "th-001"),
	})
	assert.Equal(t, 2, totals.BookingCount)
	assert.True(t, totals.Revenue.Equal(dec(850000)))
	assert.True(t, totals.Incentives.Equal(dec(125000)))
	assert.True(t, totals.NetProfit.Equal(dec(725000)))
}
