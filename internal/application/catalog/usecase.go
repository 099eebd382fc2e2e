package catalog

import (
	"context"

	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
)

// Store lectura del snapshot más los comandos del catálogo.
type Store interface {
	repository.SnapshotReader
	repository.ServiceCommands
}

// CatalogUseCase servicios, sucursales y terapeutas. Sucursales y terapeutas son de solo lectura.
type CatalogUseCase struct {
	store Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(store Store) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// ListBranches sucursales en el orden del store.
func (uc *CatalogUseCase) ListBranches(ctx context.Context) []entity.Branch {
	return append([]entity.Branch{}, uc.store.Snapshot().Branches...)
}

// ListTherapists terapeutas en el orden del store.
func (uc *CatalogUseCase) ListTherapists(ctx context.Context) []entity.Therapist {
	return append([]entity.Therapist{}, uc.store.Snapshot().Therapists...)
}

// ListServices servicios; con activeOnly se omiten los desactivados.
func (uc *CatalogUseCase) ListServices(ctx context.Context, activeOnly bool) []entity.Service {
	out := []entity.Service{}
	for _, s := range uc.store.Snapshot().Services {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out
}

// GroupedServices servicios agrupados por categoría en orden de primera aparición.
func (uc *CatalogUseCase) GroupedServices(ctx context.Context, activeOnly bool) []dto.CategoryGroup[entity.Service] {
	return analytics.GroupByCategory(uc.ListServices(ctx, activeOnly), func(s entity.Service) string { return s.Category })
}

// CreateService registra un servicio activo.
func (uc *CatalogUseCase) CreateService(ctx context.Context, req dto.CreateServiceRequest) (entity.Service, error) {
	return uc.store.AddService(entity.Service{
		Name:            req.Name,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Description:     req.Description,
	})
}

// UpdateService actualización parcial.
func (uc *CatalogUseCase) UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (entity.Service, error) {
	return uc.store.UpdateService(id, repository.ServicePatch{
		Name:            req.Name,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Description:     req.Description,
		IsActive:        req.IsActive,
	})
}

// DeleteService elimina el servicio. Las reservas que lo referencian quedan colgando.
func (uc *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	return uc.store.DeleteService(id)
}
