package analytics

import (
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/pkg/format"
)

// Filtros de reservas. Todos devuelven un slice nuevo y nunca nil.

// CompletedInRange reservas completadas con start <= date <= end (comparación de texto ISO).
func CompletedInRange(bookings []entity.Booking, start, end string) []entity.Booking {
	out := []entity.Booking{}
	for _, b := range bookings {
		if b.IsCompleted() && format.InRange(b.Date, start, end) {
			out = append(out, b)
		}
	}
	return out
}

// OnDate reservas de una fecha, de cualquier estado. Para "hoy" el llamador calcula la
// fecha una sola vez por pasada.
func OnDate(bookings []entity.Booking, date string) []entity.Booking {
	out := []entity.Booking{}
	for _, b := range bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

// ForBranch reservas de una sucursal; "" o "all" conserva todas.
func ForBranch(bookings []entity.Booking, branchID string) []entity.Booking {
	if branchID == "" || branchID == dto.AllBranches {
		return append([]entity.Booking{}, bookings...)
	}
	out := []entity.Booking{}
	for _, b := range bookings {
		if b.BranchID == branchID {
			out = append(out, b)
		}
	}
	return out
}

// Completed solo reservas completadas.
func Completed(bookings []entity.Booking) []entity.Booking {
	out := []entity.Booking{}
	for _, b := range bookings {
		if b.IsCompleted() {
			out = append(out, b)
		}
	}
	return out
}
