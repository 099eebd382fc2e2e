package scheduling

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
)

// Horario de atención para la grilla de turnos.
const (
	slotOpen     = 9 * 60
	slotClose    = 21 * 60
	slotInterval = 30
)

// Store lectura del snapshot más los comandos de reservas.
type Store interface {
	repository.SnapshotReader
	repository.BookingCommands
}

// SchedulingUseCase agenda diaria y mantenimiento de reservas.
type SchedulingUseCase struct {
	store Store
	now   analytics.Clock
}

// NewSchedulingUseCase construye el caso de uso; now nil usa time.Now.
func NewSchedulingUseCase(store Store, now analytics.Clock) *SchedulingUseCase {
	if now == nil {
		now = time.Now
	}
	return &SchedulingUseCase{store: store, now: now}
}

// TimeSlots turnos de 30 minutos de 09:00 a 20:30.
func TimeSlots() []string {
	out := make([]string, 0, (slotClose-slotOpen)/slotInterval)
	for m := slotOpen; m < slotClose; m += slotInterval {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

// ListForDate reservas de una fecha (default hoy) y sucursal ("all" o vacío = todas),
// ordenadas por hora y con nombres resueltos.
func (uc *SchedulingUseCase) ListForDate(ctx context.Context, branchID, date string) ([]dto.BookingDetailDTO, error) {
	if date == "" {
		date = format.Today(uc.now())
	}
	if _, err := format.ParseISODate(date); err != nil {
		return nil, fmt.Errorf("date inválido %q: %w", date, domain.ErrInvalidInput)
	}
	snap := uc.store.Snapshot()
	bookings := analytics.ForBranch(analytics.OnDate(snap.Bookings, date), branchID)
	return analytics.BookingDetails(bookings, finance.NewSnapshotIndex(snap)), nil
}

// Create registra una reserva. El servicio debe existir; el terapeuta, si viene, también.
func (uc *SchedulingUseCase) Create(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingDetailDTO, error) {
	if err := uc.checkRefs(&req.ServiceID, &req.TherapistID); err != nil {
		return nil, err
	}
	b, err := uc.store.AddBooking(entity.Booking{
		BranchID:     req.BranchID,
		ServiceID:    req.ServiceID,
		TherapistID:  req.TherapistID,
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return uc.detail(b), nil
}

// Update actualización parcial.
func (uc *SchedulingUseCase) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (*dto.BookingDetailDTO, error) {
	if err := uc.checkRefs(req.ServiceID, req.TherapistID); err != nil {
		return nil, err
	}
	b, err := uc.store.UpdateBooking(id, repository.BookingPatch{
		BranchID:     req.BranchID,
		ServiceID:    req.ServiceID,
		TherapistID:  req.TherapistID,
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return uc.detail(b), nil
}

// UpdateStatus cambia solo el estado (p. ej. confirmed → completed).
func (uc *SchedulingUseCase) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*dto.BookingDetailDTO, error) {
	b, err := uc.store.UpdateBooking(id, repository.BookingPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	return uc.detail(b), nil
}

// Delete elimina una reserva.
func (uc *SchedulingUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteBooking(id)
}

// checkRefs valida las referencias presentes; nil significa que no cambian.
func (uc *SchedulingUseCase) checkRefs(serviceID, therapistID *string) error {
	ix := finance.NewSnapshotIndex(uc.store.Snapshot())
	if serviceID != nil {
		if _, ok := ix.Service(*serviceID); !ok {
			return fmt.Errorf("reserva: servicio %q: %w", *serviceID, domain.ErrInvalidInput)
		}
	}
	if therapistID != nil && *therapistID != "" {
		if _, ok := ix.Therapist(*therapistID); !ok {
			return fmt.Errorf("reserva: terapeuta %q: %w", *therapistID, domain.ErrInvalidInput)
		}
	}
	return nil
}

func (uc *SchedulingUseCase) detail(b entity.Booking) *dto.BookingDetailDTO {
	d := analytics.BookingDetails([]entity.Booking{b}, finance.NewSnapshotIndex(uc.store.Snapshot()))
	return &d[0]
}
