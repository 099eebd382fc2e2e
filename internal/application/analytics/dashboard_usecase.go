package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
	"github.com/jhoicas/Spacity-api/pkg/format"
)

// DashboardUseCase resumen operativo del día para el tablero.
type DashboardUseCase struct {
	store repository.SnapshotReader
	now   Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.SnapshotReader, now Clock) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{store: store, now: now}
}

// GetToday reservas de hoy (todos los estados) de una sucursal o "all", con ingreso
// realizado (completadas) y esperado (todas menos canceladas).
func (uc *DashboardUseCase) GetToday(ctx context.Context, branchID string) (*dto.TodayDashboardDTO, error) {
	today := format.Today(uc.now())
	snap := uc.store.Snapshot()
	ix := finance.NewSnapshotIndex(snap)
	todays := ForBranch(OnDate(snap.Bookings, today), branchID)

	var pending []entity.Booking
	therapists := make(map[string]struct{})
	for _, b := range todays {
		if b.Status != entity.BookingCancelled {
			pending = append(pending, b)
		}
		if b.TherapistID != "" {
			therapists[b.TherapistID] = struct{}{}
		}
	}
	completed := Completed(todays)

	out := &dto.TodayDashboardDTO{
		Date:              today,
		BranchID:          branchID,
		TotalBookings:     len(todays),
		CompletedBookings: len(completed),
		Revenue:           ix.Revenue(completed),
		ExpectedRevenue:   ix.Revenue(pending),
		ActiveTherapists:  len(therapists),
		Bookings:          BookingDetails(todays, ix),
	}
	switch br, ok := snap.BranchByID(branchID); {
	case ok:
		out.BranchName = br.Name
	case branchID == "" || branchID == dto.AllBranches:
		out.BranchName = AllBranchesName
	}
	return out, nil
}
