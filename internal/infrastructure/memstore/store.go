// Package memstore implementa el store de la aplicación en memoria.
//
// Cada mutación publica un snapshot nuevo (copy-on-write) con Version+1; los snapshots
// entregados antes siguen siendo válidos e inmutables, así que los reportes pueden
// calcular sin bloquear a los handlers que escriben.
package memstore

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
	"github.com/jhoicas/Spacity-api/pkg/logger"
)

var _ repository.Store = (*Store)(nil)

// Prefijos de id por colección.
const (
	servicePrefix   = "svc-"
	bookingPrefix   = "bk-"
	inventoryPrefix = "inv-"
)

// Store store versionado en memoria, seguro para uso concurrente.
type Store struct {
	mu      sync.RWMutex
	current *entity.Snapshot
	log     *logger.Logger
	newID   func(prefix string) string
}

// Option ajusta la construcción del store.
type Option func(*Store)

// WithLogger registra las mutaciones en nivel debug.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator reemplaza el generador de ids (tests).
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(s *Store) { s.newID = fn }
}

// New construye el store a partir de un snapshot inicial (nil = vacío). El snapshot
// inicial se valida y se copia; quien lo pasa puede seguir usándolo.
func New(initial *entity.Snapshot, opts ...Option) (*Store, error) {
	s := &Store{
		log:   logger.Nop(),
		newID: func(prefix string) string { return prefix + uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	snap := &entity.Snapshot{}
	if initial != nil {
		if err := validateSnapshot(initial); err != nil {
			return nil, err
		}
		snap = cloneSnapshot(initial)
	}
	s.current = snap
	return s, nil
}

// Snapshot devuelve la versión vigente. No debe modificarse.
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// publish instala next como versión vigente. Debe llamarse con s.mu tomado en escritura.
func (s *Store) publish(next *entity.Snapshot, op, id string) {
	next.Version = s.current.Version + 1
	s.current = next
	s.log.Debug().
		Str("op", op).
		Str("id", id).
		Uint64("version", next.Version).
		Msg("store: snapshot publicado")
}

// derive copia superficial del snapshot vigente: los slices se comparten hasta que
// la mutación reemplaza el que toca.
func (s *Store) derive() *entity.Snapshot {
	next := *s.current
	return &next
}

func cloneSnapshot(in *entity.Snapshot) *entity.Snapshot {
	return &entity.Snapshot{
		Version:    in.Version,
		Branches:   append([]entity.Branch{}, in.Branches...),
		Services:   append([]entity.Service{}, in.Services...),
		Therapists: append([]entity.Therapist{}, in.Therapists...),
		Bookings:   append([]entity.Booking{}, in.Bookings...),
		Inventory:  append([]entity.InventoryItem{}, in.Inventory...),
	}
}

// replaceAt devuelve una copia de items con el elemento i sustituido.
func replaceAt[T any](items []T, i int, v T) []T {
	out := append([]T{}, items...)
	out[i] = v
	return out
}

// removeAt devuelve una copia de items sin el elemento i.
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// appendCopy agrega sin tocar el arreglo subyacente del snapshot anterior.
func appendCopy[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}
