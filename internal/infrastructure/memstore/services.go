package memstore

import (
	"fmt"

	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
)

// AddService asigna id, marca el servicio como activo y lo agrega al catálogo.
func (s *Store) AddService(svc entity.Service) (entity.Service, error) {
	svc.IsActive = true
	if err := validateService(svc); err != nil {
		return entity.Service{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = s.newID(servicePrefix)
	next := s.derive()
	next.Services = appendCopy(s.current.Services, svc)
	s.publish(next, "service.add", svc.ID)
	return svc, nil
}

// UpdateService aplica un patch parcial; los campos nil conservan su valor.
func (s *Store) UpdateService(id string, patch repository.ServicePatch) (entity.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.current.Services, func(v entity.Service) bool { return v.ID == id })
	if i < 0 {
		return entity.Service{}, fmt.Errorf("servicio %s: %w", id, domain.ErrNotFound)
	}
	svc := s.current.Services[i]
	if patch.Name != nil {
		svc.Name = *patch.Name
	}
	if patch.Category != nil {
		svc.Category = *patch.Category
	}
	if patch.DurationMinutes != nil {
		svc.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.IsActive != nil {
		svc.IsActive = *patch.IsActive
	}
	if err := validateService(svc); err != nil {
		return entity.Service{}, err
	}

	next := s.derive()
	next.Services = replaceAt(s.current.Services, i, svc)
	s.publish(next, "service.update", id)
	return svc, nil
}

// DeleteService elimina el servicio. Las reservas que lo referencian se conservan y
// pasan a aportar cero en los reportes.
func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.current.Services, func(v entity.Service) bool { return v.ID == id })
	if i < 0 {
		return fmt.Errorf("servicio %s: %w", id, domain.ErrNotFound)
	}
	next := s.derive()
	next.Services = removeAt(s.current.Services, i)
	s.publish(next, "service.delete", id)
	return nil
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, v := range items {
		if match(v) {
			return i
		}
	}
	return -1
}
