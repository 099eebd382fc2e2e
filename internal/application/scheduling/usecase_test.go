package scheduling_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/application/scheduling"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/infrastructure/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock() time.Time { return time.Date(2026, time.October, 15, 8, 0, 0, 0, time.UTC) }

func newUseCase(t *testing.T) (*scheduling.SchedulingUseCase, *memstore.Store) {
	t.Helper()
	store, err := memstore.New(&entity.Snapshot{
		Branches:   []entity.Branch{{ID: "br-a", Name: "Branch A", ProfitSharingPercent: decimal.NewFromInt(30)}},
		Services:   []entity.Service{{ID: "svc-1", Name: "Balinese Massage", Category: "Massage", DurationMinutes: 90, Price: decimal.NewFromInt(350000)}},
		Therapists: []entity.Therapist{{ID: "th-1", Name: "Made", HourlyIncentive: decimal.NewFromInt(50000)}},
		Bookings: []entity.Booking{
			{ID: "bk-1", BranchID: "br-a", ServiceID: "svc-1", TherapistID: "th-1", Date: "2026-10-15", Time: "15:00", Status: entity.BookingConfirmed},
			{ID: "bk-2", BranchID: "br-a", ServiceID: "svc-borrado", TherapistID: "th-1", Date: "2026-10-15", Time: "09:30", Status: entity.BookingPending},
			{ID: "bk-3", BranchID: "br-b", ServiceID: "svc-1", TherapistID: "th-1", Date: "2026-10-15", Time: "10:00", Status: entity.BookingPending},
			{ID: "bk-4", BranchID: "br-a", ServiceID: "svc-1", TherapistID: "th-1", Date: "2026-10-16", Time: "10:00", Status: entity.BookingPending},
		},
	})
	require.NoError(t, err)
	return scheduling.NewSchedulingUseCase(store, clock), store
}

func TestTimeSlots(t *testing.T) {
	slots := scheduling.TimeSlots()
	require.Len(t, slots, 24)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "20:30", slots[23])
}

func TestListForDate(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	got, err := uc.ListForDate(ctx, "br-a", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bk-2", got[0].ID, "ordenadas por hora")
	assert.Empty(t, got[0].ServiceName, "servicio borrado queda vacío sin error")
	assert.Equal(t, "Balinese Massage", got[1].ServiceName)

	all, err := uc.ListForDate(ctx, "all", "2026-10-15")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.ListForDate(ctx, "br-a", "mañana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	b, err := uc.Create(ctx, dto.CreateBookingRequest{
		BranchID: "br-a", ServiceID: "svc-1", TherapistID: "th-1",
		CustomerName: "Ayu", Date: "2026-10-15", Time: "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, b.Status)
	assert.Equal(t, "Made", b.TherapistName)
	assert.True(t, b.Price.Equal(decimal.NewFromInt(350000)))
	assert.Len(t, store.Snapshot().Bookings, 5)

	_, err = uc.Create(ctx, dto.CreateBookingRequest{BranchID: "br-a", ServiceID: "svc-x", Date: "2026-10-15", Time: "11:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateBookingRequest{BranchID: "br-a", ServiceID: "svc-1", TherapistID: "th-x", Date: "2026-10-15", Time: "11:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateBookingRequest{BranchID: "br-x", ServiceID: "svc-1", Date: "2026-10-15", Time: "11:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateAndStatus(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	name := "Komang"
	b, err := uc.Update(ctx, "bk-1", dto.UpdateBookingRequest{CustomerName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Komang", b.CustomerName)

	b, err = uc.UpdateStatus(ctx, "bk-1", entity.BookingCompleted)
	require.NoError(t, err)
	assert.True(t, b.IsCompleted())

	_, err = uc.UpdateStatus(ctx, "bk-1", "done")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus(ctx, "bk-x", entity.BookingCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, "bk-1"))
	assert.ErrorIs(t, uc.Delete(ctx, "bk-1"), domain.ErrNotFound)
}
