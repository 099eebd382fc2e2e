package memstore

import (
	"fmt"

	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
)

// AddInventoryItem asigna id y agrega el ítem.
func (s *Store) AddInventoryItem(item entity.InventoryItem) (entity.InventoryItem, error) {
	if err := validateInventory(item); err != nil {
		return entity.InventoryItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.newID(inventoryPrefix)
	next := s.derive()
	next.Inventory = appendCopy(s.current.Inventory, item)
	s.publish(next, "inventory.add", item.ID)
	return item, nil
}

// UpdateInventoryItem aplica un patch parcial.
func (s *Store) UpdateInventoryItem(id string, patch repository.InventoryPatch) (entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.current.Inventory, func(v entity.InventoryItem) bool { return v.ID == id })
	if i < 0 {
		return entity.InventoryItem{}, fmt.Errorf("inventario %s: %w", id, domain.ErrNotFound)
	}
	item := s.current.Inventory[i]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.CurrentStock != nil {
		item.CurrentStock = *patch.CurrentStock
	}
	if patch.MinStock != nil {
		item.MinStock = *patch.MinStock
	}
	if patch.PricePerUnit != nil {
		item.PricePerUnit = *patch.PricePerUnit
	}
	if err := validateInventory(item); err != nil {
		return entity.InventoryItem{}, err
	}

	next := s.derive()
	next.Inventory = replaceAt(s.current.Inventory, i, item)
	s.publish(next, "inventory.update", id)
	return item, nil
}

// DeleteInventoryItem elimina el ítem.
func (s *Store) DeleteInventoryItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.current.Inventory, func(v entity.InventoryItem) bool { return v.ID == id })
	if i < 0 {
		return fmt.Errorf("inventario %s: %w", id, domain.ErrNotFound)
	}
	next := s.derive()
	next.Inventory = removeAt(s.current.Inventory, i)
	s.publish(next, "inventory.delete", id)
	return nil
}
