package catalog_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Spacity-api/internal/application/catalog"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/infrastructure/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newUseCase(t *testing.T) *catalog.CatalogUseCase {
	t.Helper()
	store, err := memstore.New(&entity.Snapshot{
		Branches:   []entity.Branch{{ID: "br-a", Name: "Branch A", ProfitSharingPercent: dec(30)}},
		Therapists: []entity.Therapist{{ID: "th-1", Name: "Made", HourlyIncentive: dec(50000)}},
		Services: []entity.Service{
			{ID: "svc-1", Name: "Balinese Massage", Category: "Massage", DurationMinutes: 90, Price: dec(350000), IsActive: true},
			{ID: "svc-2", Name: "Facial", Category: "Facial", DurationMinutes: 60, Price: dec(250000), IsActive: true},
			{ID: "svc-3", Name: "Hot Stone", Category: "Massage", DurationMinutes: 120, Price: dec(500000), IsActive: false},
		},
	})
	require.NoError(t, err)
	return catalog.NewCatalogUseCase(store)
}

func TestGroupedServices_OrdenDePrimeraAparicion(t *testing.T) {
	uc := newUseCase(t)

	groups := uc.GroupedServices(context.Background(), false)
	require.Len(t, groups, 2)
	assert.Equal(t, "Massage", groups[0].Category)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "svc-1", groups[0].Items[0].ID)
	assert.Equal(t, "svc-3", groups[0].Items[1].ID)
	assert.Equal(t, "Facial", groups[1].Category)

	active := uc.GroupedServices(context.Background(), true)
	require.Len(t, active, 2)
	assert.Len(t, active[0].Items, 1)
}

func TestReadOnlyLists(t *testing.T) {
	uc := newUseCase(t)
	assert.Len(t, uc.ListBranches(context.Background()), 1)
	assert.Equal(t, "Made", uc.ListTherapists(context.Background())[0].Name)
}

func TestServiceCRUD(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	s, err := uc.CreateService(ctx, dto.CreateServiceRequest{Name: "Lulur", Category: "Body", DurationMinutes: 45, Price: dec(200000)})
	require.NoError(t, err)
	assert.True(t, s.IsActive)
	assert.Len(t, uc.ListServices(ctx, false), 4)

	_, err = uc.CreateService(ctx, dto.CreateServiceRequest{Name: "Gratis", DurationMinutes: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inactive := false
	s, err = uc.UpdateService(ctx, s.ID, dto.UpdateServiceRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, s.IsActive)
	assert.Equal(t, "Lulur", s.Name)

	require.NoError(t, uc.DeleteService(ctx, s.ID))
	assert.ErrorIs(t, uc.DeleteService(ctx, s.ID), domain.ErrNotFound)
}
