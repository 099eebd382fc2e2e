package repository

import (
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SnapshotReader puerto de lectura del store. Es lo único que reciben los casos de uso
// de reportes: nunca tienen acceso de escritura.
type SnapshotReader interface {
	Snapshot() *entity.Snapshot
}

// ServicePatch actualización parcial de un servicio; los campos nil no se tocan.
type ServicePatch struct {
	Name            *string
	Category        *string
	DurationMinutes *int
	Price           *decimal.Decimal
	Description     *string
	IsActive        *bool
}

// BookingPatch actualización parcial de una reserva.
type BookingPatch struct {
	BranchID     *string
	ServiceID    *string
	TherapistID  *string
	CustomerName *string
	Date         *string
	Time         *string
	Status       *entity.BookingStatus
	Notes        *string
}

// InventoryPatch actualización parcial de un ítem de inventario.
type InventoryPatch struct {
	Name         *string
	Category     *string
	Unit         *string
	CurrentStock *int
	MinStock     *int
	PricePerUnit *decimal.Decimal
}

// ServiceCommands mutaciones del catálogo. Cada llamada publica una nueva versión del snapshot.
type ServiceCommands interface {
	AddService(s entity.Service) (entity.Service, error)
	UpdateService(id string, patch ServicePatch) (entity.Service, error)
	DeleteService(id string) error
}

// BookingCommands mutaciones de reservas.
type BookingCommands interface {
	AddBooking(b entity.Booking) (entity.Booking, error)
	UpdateBooking(id string, patch BookingPatch) (entity.Booking, error)
	DeleteBooking(id string) error
}

// InventoryCommands mutaciones de inventario.
type InventoryCommands interface {
	AddInventoryItem(i entity.InventoryItem) (entity.InventoryItem, error)
	UpdateInventoryItem(id string, patch InventoryPatch) (entity.InventoryItem, error)
	DeleteInventoryItem(id string) error
}

// Store agrupa lectura y comandos; lo implementa infrastructure/memstore.
type Store interface {
	SnapshotReader
	ServiceCommands
	BookingCommands
	InventoryCommands
}
