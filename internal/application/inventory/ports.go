package inventory

import "github.com/jhoicas/Spacity-api/internal/domain/repository"

// Store lectura del snapshot más los comandos de inventario.
type Store interface {
	repository.SnapshotReader
	repository.InventoryCommands
}
