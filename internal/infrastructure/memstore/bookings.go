package memstore

import (
	"fmt"

	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/repository"
)

// AddBooking registra una reserva. Sin estado explícito queda como confirmed.
func (s *Store) AddBooking(b entity.Booking) (entity.Booking, error) {
	if b.Status == "" {
		b.Status = entity.BookingConfirmed
	}
	if err := validateBooking(b); err != nil {
		return entity.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.current.BranchByID(b.BranchID); !ok {
		return entity.Booking{}, fmt.Errorf("reserva: sucursal %q: %w", b.BranchID, domain.ErrInvalidInput)
	}
	b.ID = s.newID(bookingPrefix)
	next := s.derive()
	next.Bookings = appendCopy(s.current.Bookings, b)
	s.publish(next, "booking.add", b.ID)
	return b, nil
}

// UpdateBooking aplica un patch parcial (incluye cambios de estado).
func (s *Store) UpdateBooking(id string, patch repository.BookingPatch) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.current.Bookings, func(v entity.Booking) bool { return v.ID == id })
	if i < 0 {
		return entity.Booking{}, fmt.Errorf("reserva %s: %w", id, domain.ErrNotFound)
	}
	b := s.current.Bookings[i]
	if patch.BranchID != nil {
		if _, ok := s.current.BranchByID(*patch.BranchID); !ok {
			return entity.Booking{}, fmt.Errorf("reserva: sucursal %q: %w", *patch.BranchID, domain.ErrInvalidInput)
		}
		b.BranchID = *patch.BranchID
	}
	if patch.ServiceID != nil {
		b.ServiceID = *patch.ServiceID
	}
	if patch.TherapistID != nil {
		b.TherapistID = *patch.TherapistID
	}
	if patch.CustomerName != nil {
		b.CustomerName = *patch.CustomerName
	}
	if patch.Date != nil {
		b.Date = *patch.Date
	}
	if patch.Time != nil {
		b.Time = *patch.Time
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if err := validateBooking(b); err != nil {
		return entity.Booking{}, err
	}

	next := s.derive()
	next.Bookings = replaceAt(s.current.Bookings, i, b)
	s.publish(next, "booking.update", id)
	return b, nil
}

// DeleteBooking elimina la reserva.
func (s *Store) DeleteBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.current.Bookings, func(v entity.Booking) bool { return v.ID == id })
	if i < 0 {
		return fmt.Errorf("reserva %s: %w", id, domain.ErrNotFound)
	}
	next := s.derive()
	next.Bookings = removeAt(s.current.Bookings, i)
	s.publish(next, "booking.delete", id)
	return nil
}
