package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
	"github.com/jhoicas/Spacity-api/pkg/format"
	"golang.org/x/sync/errgroup"
)

const (
	defaultDays = 7
	maxDays     = 366
)

// AnalyticsUseCase arma la vista de analítica sobre reservas completadas:
//   - KPIs globales del período (ingresos, incentivos, utilidad, margen, inventario).
//   - Serie diaria de ingresos con todos los días del rango.
//   - Comparativo por sucursal y ranking de servicios.
type AnalyticsUseCase struct {
	store repository.SnapshotReader
	now   Clock
	days  int
	topN  int
}

// NewAnalyticsUseCase construye el caso de uso. days y topN <= 0 toman los defaults (7 y 5);
// now nil usa time.Now.
func NewAnalyticsUseCase(store repository.SnapshotReader, now Clock, days, topN int) *AnalyticsUseCase {
	if now == nil {
		now = time.Now
	}
	if days <= 0 {
		days = defaultDays
	}
	if topN <= 0 {
		topN = DefaultTopServices
	}
	return &AnalyticsUseCase{store: store, now: now, days: days, topN: topN}
}

// period resuelve el rango: fechas explícitas si llegan, si no los últimos N días.
// En ambos casos el rango queda limitado a maxDays días.
func (uc *AnalyticsUseCase) period(req dto.AnalyticsRequest) (dto.PeriodDTO, error) {
	days := req.Days
	if days == 0 {
		days = uc.days
	}
	if days < 0 || days > maxDays {
		return dto.PeriodDTO{}, fmt.Errorf("days debe estar entre 1 y %d: %w", maxDays, domain.ErrInvalidInput)
	}
	p, err := resolvePeriod(req.StartDate, req.EndDate, lastNDays(uc.now(), days))
	if err != nil {
		return dto.PeriodDTO{}, err
	}
	start, _ := format.ParseISODate(p.StartDate)
	end, _ := format.ParseISODate(p.EndDate)
	if !end.Before(start.AddDate(0, 0, maxDays)) {
		return dto.PeriodDTO{}, fmt.Errorf("el rango no puede superar %d días: %w", maxDays, domain.ErrInvalidInput)
	}
	return p, nil
}

// GetReport genera KPIs, serie diaria, comparativo y top de servicios sobre un mismo snapshot.
// Las secciones son independientes y se calculan en paralelo.
func (uc *AnalyticsUseCase) GetReport(ctx context.Context, req dto.AnalyticsRequest) (*dto.AnalyticsReportDTO, error) {
	p, err := uc.period(req)
	if err != nil {
		return nil, err
	}
	snap := uc.store.Snapshot()
	ix := finance.NewSnapshotIndex(snap)
	completed := CompletedInRange(snap.Bookings, p.StartDate, p.EndDate)

	out := &dto.AnalyticsReportDTO{Period: p}
	var g errgroup.Group
	g.Go(func() error {
		out.KPIs = kpis(snap, ix, completed)
		return nil
	})
	g.Go(func() error {
		series, err := DailyRevenue(completed, ix, p.StartDate, p.EndDate)
		out.DailyRevenue = series
		return err
	})
	g.Go(func() error {
		out.BranchComparison = BranchComparison(snap.Branches, completed, ix)
		return nil
	})
	g.Go(func() error {
		out.TopServices = TopServices(completed, ix, uc.topN)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetKPIs indicadores del período.
func (uc *AnalyticsUseCase) GetKPIs(ctx context.Context, req dto.AnalyticsRequest) (*dto.KPIsDTO, error) {
	p, err := uc.period(req)
	if err != nil {
		return nil, err
	}
	snap := uc.store.Snapshot()
	ix := finance.NewSnapshotIndex(snap)
	k := kpis(snap, ix, CompletedInRange(snap.Bookings, p.StartDate, p.EndDate))
	return &k, nil
}

// GetDailySeries ingreso por día del período.
func (uc *AnalyticsUseCase) GetDailySeries(ctx context.Context, req dto.AnalyticsRequest) ([]dto.DailyRevenueDTO, error) {
	p, err := uc.period(req)
	if err != nil {
		return nil, err
	}
	snap := uc.store.Snapshot()
	ix := finance.NewSnapshotIndex(snap)
	return DailyRevenue(CompletedInRange(snap.Bookings, p.StartDate, p.EndDate), ix, p.StartDate, p.EndDate)
}

// GetBranchComparison ingreso por sucursal del período.
func (uc *AnalyticsUseCase) GetBranchComparison(ctx context.Context, req dto.AnalyticsRequest) ([]dto.BranchComparisonDTO, error) {
	p, err := uc.period(req)
	if err != nil {
		return nil, err
	}
	snap := uc.store.Snapshot()
	ix := finance.NewSnapshotIndex(snap)
	return BranchComparison(snap.Branches, CompletedInRange(snap.Bookings, p.StartDate, p.EndDate), ix), nil
}

// GetTopServices servicios con más ingreso del período.
func (uc *AnalyticsUseCase) GetTopServices(ctx context.Context, req dto.AnalyticsRequest) ([]dto.ServiceStatDTO, error) {
	p, err := uc.period(req)
	if err != nil {
		return nil, err
	}
	snap := uc.store.Snapshot()
	ix := finance.NewSnapshotIndex(snap)
	return TopServices(CompletedInRange(snap.Bookings, p.StartDate, p.EndDate), ix, uc.topN), nil
}

func kpis(snap *entity.Snapshot, ix *finance.Index, completed []entity.Booking) dto.KPIsDTO {
	t := ix.Totals(completed)
	value, low := InventoryMetrics(snap.Inventory)
	return dto.KPIsDTO{
		TotalRevenue:        t.Revenue,
		TotalIncentives:     t.Incentives,
		NetProfit:           t.NetProfit,
		MarginPct:           finance.MarginPercent(t.NetProfit, t.Revenue),
		TotalBookings:       t.BookingCount,
		TotalInventoryValue: value,
		LowStockCount:       low,
		TotalInventoryItems: len(snap.Inventory),
	}
}
