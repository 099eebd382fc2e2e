package finance

import "github.com/jhoicas/Spacity-api/internal/domain/entity"

// Index mapas id → entidad construidos una sola vez por pasada de cálculo.
// Ante ids duplicados gana la primera aparición, igual que una búsqueda lineal.
type Index struct {
	services   map[string]entity.Service
	therapists map[string]entity.Therapist
}

// NewIndex indexa servicios y terapeutas. Cualquiera de los dos puede ser nil.
func NewIndex(services []entity.Service, therapists []entity.Therapist) *Index {
	ix := &Index{
		services:   make(map[string]entity.Service, len(services)),
		therapists: make(map[string]entity.Therapist, len(therapists)),
	}
	for _, s := range services {
		if _, dup := ix.services[s.ID]; !dup {
			ix.services[s.ID] = s
		}
	}
	for _, t := range therapists {
		if _, dup := ix.therapists[t.ID]; !dup {
			ix.therapists[t.ID] = t
		}
	}
	return ix
}

// NewSnapshotIndex atajo para indexar un snapshot completo.
func NewSnapshotIndex(s *entity.Snapshot) *Index {
	return NewIndex(s.Services, s.Therapists)
}

// Service resuelve un servicio por id.
func (ix *Index) Service(id string) (entity.Service, bool) {
	s, ok := ix.services[id]
	return s, ok
}

// Therapist resuelve un terapeuta por id.
func (ix *Index) Therapist(id string) (entity.Therapist, bool) {
	t, ok := ix.therapists[id]
	return t, ok
}
