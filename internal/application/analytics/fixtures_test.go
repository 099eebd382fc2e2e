package analytics_test

import (
	"testing"
	"time"

	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/infrastructure/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidas
// ──────────────────────────────────────────────────────────────────────────────

// fixedNow 15/10/2026 10:00, jueves.
var fixedNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func baseSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Branches: []entity.Branch{
			{ID: "br-a", Name: "Branch A", HotelPartner: "Hotel Ubud", ProfitSharingPercent: dec(30), IsActive: true},
			{ID: "br-b", Name: "Branch B", HotelPartner: "Hotel Kuta", ProfitSharingPercent: dec(40), IsActive: true},
		},
		Services: []entity.Service{
			{ID: "svc-1", Name: "Balinese Massage", Category: "Massage", DurationMinutes: 90, Price: dec(350000), IsActive: true},
			{ID: "svc-2", Name: "Facial", Category: "Facial", DurationMinutes: 60, Price: dec(250000), IsActive: true},
			{ID: "svc-3", Name: "Hot Stone", Category: "Massage", DurationMinutes: 120, Price: dec(500000), IsActive: true},
		},
		Therapists: []entity.Therapist{
			{ID: "th-1", Name: "Made", HourlyIncentive: dec(50000)},
			{ID: "th-2", Name: "Wayan", HourlyIncentive: dec(60000)},
		},
		Inventory: []entity.InventoryItem{
			{ID: "inv-1", Name: "Minyak Kelapa", Category: "Oil", Unit: "botol", CurrentStock: 2, MinStock: 5, PricePerUnit: dec(40000)},
			{ID: "inv-2", Name: "Handuk", Category: "Linen", Unit: "pcs", CurrentStock: 20, MinStock: 10, PricePerUnit: dec(15000)},
		},
	}
}

func booking(id, branch, svc, th, date, hhmm string, st entity.BookingStatus) entity.Booking {
	return entity.Booking{ID: id, BranchID: branch, ServiceID: svc, TherapistID: th, CustomerName: "Tamu " + id, Date: date, Time: hhmm, Status: st}
}

func newStore(t *testing.T, bookings ...entity.Booking) *memstore.Store {
	t.Helper()
	snap := baseSnapshot()
	snap.Bookings = bookings
	s, err := memstore.New(snap)
	require.NoError(t, err)
	return s
}
