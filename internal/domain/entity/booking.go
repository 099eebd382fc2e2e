package entity

// BookingStatus estado de una reserva.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid indica si el estado es uno de los cuatro reconocidos.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking representa una reserva de un cliente en una sucursal.
// ServiceID y TherapistID pueden quedar colgando (servicio borrado después de reservar);
// el motor financiero los trata como aporte cero.
type Booking struct {
	ID           string        `json:"id"`
	BranchID     string        `json:"branchId"`
	ServiceID    string        `json:"serviceId"`
	TherapistID  string        `json:"therapistId"`
	CustomerName string        `json:"customerName"`
	Date         string        `json:"date"` // YYYY-MM-DD, sin zona horaria
	Time         string        `json:"time"` // HH:MM, 24h
	Status       BookingStatus `json:"status"`
	Notes        string        `json:"notes"`
}

// IsCompleted indica si la reserva cuenta para ingresos e incentivos realizados.
func (b Booking) IsCompleted() bool { return b.Status == BookingCompleted }
