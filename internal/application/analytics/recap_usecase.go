package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
	"github.com/jhoicas/Spacity-api/pkg/format"
	"github.com/shopspring/decimal"
)

// AllBranchesName nombre que se muestra cuando el recap cubre todas las sucursales.
const AllBranchesName = "Semua Cabang"

var hundred = decimal.NewFromInt(100)

// RecapUseCase recap diario y desglose de ingresos por rango, con reparto spa/hotel.
type RecapUseCase struct {
	store             repository.SnapshotReader
	now               Clock
	defaultSpaPercent decimal.Decimal
}

// NewRecapUseCase construye el caso de uso. defaultSpaPercent se aplica solo a reservas
// cuya sucursal no existe en el snapshot; una sucursal configurada con 0% conserva 0%.
func NewRecapUseCase(store repository.SnapshotReader, now Clock, defaultSpaPercent decimal.Decimal) *RecapUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecapUseCase{store: store, now: now, defaultSpaPercent: defaultSpaPercent}
}

// GetDailyRecap recap de un día (default hoy) para una sucursal o "all".
func (uc *RecapUseCase) GetDailyRecap(ctx context.Context, branchID, date string) (*dto.RecapDTO, error) {
	today := format.Today(uc.now())
	p, err := resolvePeriod(date, date, dto.PeriodDTO{StartDate: today, EndDate: today})
	if err != nil {
		return nil, err
	}
	return uc.Build(uc.store.Snapshot(), branchID, p), nil
}

// GetIncomeBreakdown recap de un rango; por defecto del primer día del mes a hoy.
func (uc *RecapUseCase) GetIncomeBreakdown(ctx context.Context, req dto.RecapRequest) (*dto.RecapDTO, error) {
	p, err := resolvePeriod(req.StartDate, req.EndDate, monthToDate(uc.now()))
	if err != nil {
		return nil, err
	}
	return uc.Build(uc.store.Snapshot(), req.BranchID, p), nil
}

// Build calcula el recap de un período ya validado sobre un snapshot dado.
// Solo cuentan reservas completadas.
func (uc *RecapUseCase) Build(snap *entity.Snapshot, branchID string, p dto.PeriodDTO) *dto.RecapDTO {
	if branchID == "" {
		branchID = dto.AllBranches
	}
	ix := finance.NewSnapshotIndex(snap)
	bookings := ForBranch(CompletedInRange(snap.Bookings, p.StartDate, p.EndDate), branchID)
	t := ix.Totals(bookings)

	out := &dto.RecapDTO{
		BranchID:             branchID,
		Period:               p,
		BookingCount:         t.BookingCount,
		TotalRevenue:         t.Revenue,
		TotalIncentives:      t.Incentives,
		NetProfit:            t.NetProfit,
		MarginPct:            finance.MarginPercent(t.NetProfit, t.Revenue),
		ServiceBreakdown:     ServiceBreakdown(bookings, ix),
		TherapistPerformance: TherapistPerformance(bookings, ix),
	}
	if branchID == dto.AllBranches {
		out.BranchName = AllBranchesName
		out.BranchSplits = uc.branchSplits(snap, ix, bookings)
		out.ProfitSharing = combineSplits(t.NetProfit, out.BranchSplits, uc.defaultSpaPercent)
		return out
	}
	if br, ok := snap.BranchByID(branchID); ok {
		out.BranchName = br.Name
	}
	out.ProfitSharing = finance.ProfitSharing(t.NetProfit, uc.spaPercent(snap, branchID))
	return out
}

func (uc *RecapUseCase) spaPercent(snap *entity.Snapshot, branchID string) decimal.Decimal {
	if br, ok := snap.BranchByID(branchID); ok {
		return br.ProfitSharingPercent
	}
	return uc.defaultSpaPercent
}

// branchSplits reparto por sucursal: primero las del snapshot en su orden, luego los ids
// desconocidos en orden de aparición.
func (uc *RecapUseCase) branchSplits(snap *entity.Snapshot, ix *finance.Index, bookings []entity.Booking) []dto.BranchSplitDTO {
	groups := make(map[string][]entity.Booking)
	var unknown []string
	for _, b := range bookings {
		if _, seen := groups[b.BranchID]; !seen {
			if _, ok := snap.BranchByID(b.BranchID); !ok {
				unknown = append(unknown, b.BranchID)
			}
		}
		groups[b.BranchID] = append(groups[b.BranchID], b)
	}

	out := make([]dto.BranchSplitDTO, 0, len(snap.Branches)+len(unknown))
	add := func(id, name string) {
		net := ix.Totals(groups[id]).NetProfit
		out = append(out, dto.BranchSplitDTO{
			BranchID:   id,
			BranchName: name,
			NetProfit:  net,
			Split:      finance.ProfitSharing(net, uc.spaPercent(snap, id)),
		})
	}
	for _, br := range snap.Branches {
		add(br.ID, br.Name)
	}
	for _, id := range unknown {
		add(id, "")
	}
	return out
}

// combineSplits suma los repartos por sucursal. El hotel recibe net − Σspa, así la suma es
// exacta; el porcentaje es el efectivo (default si la utilidad es cero).
func combineSplits(net decimal.Decimal, splits []dto.BranchSplitDTO, def decimal.Decimal) finance.Split {
	spa := decimal.Zero
	for _, s := range splits {
		spa = spa.Add(s.Split.SpaAmount)
	}
	pct := def
	if !net.IsZero() {
		pct = spa.Div(net).Mul(hundred).Round(2)
	}
	return finance.Split{
		SpaAmount:    spa,
		HotelAmount:  net.Sub(spa),
		SpaPercent:   pct,
		HotelPercent: hundred.Sub(pct),
	}
}
