// Package export prepara los datos de los reportes descargables (ingresos, inventario y
// recibo). La generación del archivo PDF/Excel corre por cuenta del consumidor.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
	"github.com/jhoicas/Spacity-api/pkg/format"
	"github.com/shopspring/decimal"
)

// ExportUseCase arma los payloads de exportación sobre un snapshot consistente.
type ExportUseCase struct {
	store repository.SnapshotReader
	recap *analytics.RecapUseCase
	now   analytics.Clock
}

// NewExportUseCase construye el caso de uso; now nil usa time.Now.
func NewExportUseCase(store repository.SnapshotReader, recap *analytics.RecapUseCase, now analytics.Clock) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{store: store, recap: recap, now: now}
}

// RevenueReport desglose de ingresos del rango. Sin IncludeDetails se omiten el desglose por
// servicio y el desempeño por terapeuta.
func (uc *ExportUseCase) RevenueReport(ctx context.Context, opts dto.ExportOptions) (*dto.RevenueExportDTO, error) {
	opts, err := opts.Normalize(uc.now())
	if err != nil {
		return nil, err
	}
	snap := uc.store.Snapshot()
	if opts.BranchID != dto.AllBranches {
		if _, ok := snap.BranchByID(opts.BranchID); !ok {
			return nil, fmt.Errorf("export: sucursal %s: %w", opts.BranchID, domain.ErrNotFound)
		}
	}

	recap := uc.recap.Build(snap, opts.BranchID, dto.PeriodDTO{StartDate: opts.StartDate, EndDate: opts.EndDate})
	if !opts.Details() {
		recap.ServiceBreakdown = nil
		recap.TherapistPerformance = nil
	}
	return &dto.RevenueExportDTO{Options: opts, BranchName: recap.BranchName, Recap: *recap}, nil
}

// InventoryReport filas de inventario; con IncludeLowStockOnly solo ítems bajo el mínimo o
// sin existencias, y sin IncludeValues los montos quedan en nil.
func (uc *ExportUseCase) InventoryReport(ctx context.Context, opts dto.ExportOptions) (*dto.InventoryExportDTO, error) {
	opts, err := opts.Normalize(uc.now())
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryExportDTO{Options: opts, Rows: []dto.InventoryExportRow{}}
	total := decimal.Zero
	for _, it := range uc.store.Snapshot().Inventory {
		low := it.IsLowStock() || it.IsOutOfStock()
		if opts.LowStockOnly() && !low {
			continue
		}
		if it.IsLowStock() {
			out.LowStockCount++
		}
		row := dto.InventoryExportRow{
			ID:           it.ID,
			Name:         it.Name,
			Category:     it.Category,
			Unit:         it.Unit,
			CurrentStock: it.CurrentStock,
			MinStock:     it.MinStock,
			Status:       it.StockStatus(),
		}
		if opts.Values() {
			price, value := it.PricePerUnit, it.StockValue()
			row.PricePerUnit, row.StockValue = &price, &value
			total = total.Add(value)
		}
		out.Rows = append(out.Rows, row)
	}
	if opts.Values() {
		out.TotalValue = &total
	}
	return out, nil
}

// Receipt recibo de una reserva. Devuelve domain.ErrNotFound si la reserva o cualquiera de
// sus referencias (sucursal, servicio, terapeuta) no existe.
func (uc *ExportUseCase) Receipt(ctx context.Context, bookingID string) (*dto.ReceiptDTO, error) {
	snap := uc.store.Snapshot()
	var b *entity.Booking
	for _, v := range snap.Bookings {
		if v.ID == bookingID {
			b = &v
			break
		}
	}
	if b == nil {
		return nil, fmt.Errorf("recibo: reserva %s: %w", bookingID, domain.ErrNotFound)
	}

	ix := finance.NewSnapshotIndex(snap)
	branch, ok := snap.BranchByID(b.BranchID)
	if !ok {
		return nil, fmt.Errorf("recibo: sucursal %s: %w", b.BranchID, domain.ErrNotFound)
	}
	svc, ok := ix.Service(b.ServiceID)
	if !ok {
		return nil, fmt.Errorf("recibo: servicio %s: %w", b.ServiceID, domain.ErrNotFound)
	}
	th, ok := ix.Therapist(b.TherapistID)
	if !ok {
		return nil, fmt.Errorf("recibo: terapeuta %s: %w", b.TherapistID, domain.ErrNotFound)
	}

	return &dto.ReceiptDTO{
		Booking:   analytics.BookingDetails([]entity.Booking{*b}, ix)[0],
		Branch:    branch,
		Service:   svc,
		Therapist: th,
		DateLabel: format.Date(b.Date, format.DateLong),
		Total:     format.Currency(svc.Price),
	}, nil
}
