package memstore

import (
	"fmt"
	"time"

	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/pkg/format"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Reglas del borde de captura de datos. El motor financiero asume que ya se cumplen.

func validateService(s entity.Service) error {
	if s.Name == "" {
		return fmt.Errorf("servicio: nombre requerido: %w", domain.ErrInvalidInput)
	}
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("servicio: duración debe ser positiva: %w", domain.ErrInvalidInput)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("servicio: precio negativo: %w", domain.ErrInvalidInput)
	}
	return nil
}

func validateBooking(b entity.Booking) error {
	if !b.Status.Valid() {
		return fmt.Errorf("reserva: estado %q desconocido: %w", b.Status, domain.ErrInvalidInput)
	}
	if _, err := format.ParseISODate(b.Date); err != nil {
		return fmt.Errorf("reserva: fecha %q: %w", b.Date, domain.ErrInvalidInput)
	}
	if len(b.Time) != len("15:04") {
		return fmt.Errorf("reserva: hora %q debe ser HH:MM: %w", b.Time, domain.ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", b.Time); err != nil {
		return fmt.Errorf("reserva: hora %q: %w", b.Time, domain.ErrInvalidInput)
	}
	return nil
}

func validateInventory(i entity.InventoryItem) error {
	if i.Name == "" {
		return fmt.Errorf("inventario: nombre requerido: %w", domain.ErrInvalidInput)
	}
	if i.CurrentStock < 0 || i.MinStock < 0 {
		return fmt.Errorf("inventario: stock negativo: %w", domain.ErrInvalidInput)
	}
	if i.PricePerUnit.IsNegative() {
		return fmt.Errorf("inventario: precio negativo: %w", domain.ErrInvalidInput)
	}
	return nil
}

func validateBranch(b entity.Branch) error {
	if b.ProfitSharingPercent.IsNegative() || b.ProfitSharingPercent.GreaterThan(hundred) {
		return fmt.Errorf("sucursal %s: porcentaje %s fuera de [0,100]: %w", b.ID, b.ProfitSharingPercent, domain.ErrInvalidInput)
	}
	return nil
}

// validateSnapshot valida los datos cargados al arrancar. Las reservas no se validan:
// datos históricos pueden traer referencias colgantes y el motor las tolera.
func validateSnapshot(s *entity.Snapshot) error {
	for _, b := range s.Branches {
		if err := validateBranch(b); err != nil {
			return err
		}
	}
	for _, svc := range s.Services {
		if err := validateService(svc); err != nil {
			return fmt.Errorf("%s: %w", svc.ID, err)
		}
	}
	for _, it := range s.Inventory {
		if err := validateInventory(it); err != nil {
			return fmt.Errorf("%s: %w", it.ID, err)
		}
	}
	return nil
}
