package dto

import (
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest body para POST /api/bookings.
type CreateBookingRequest struct {
	BranchID     string               `json:"branch_id"`
	ServiceID    string               `json:"service_id"`
	TherapistID  string               `json:"therapist_id"`
	CustomerName string               `json:"customer_name"`
	Date         string               `json:"date"` // YYYY-MM-DD
	Time         string               `json:"time"` // HH:MM
	Status       entity.BookingStatus `json:"status,omitempty"`
	Notes        string               `json:"notes"`
}

// UpdateBookingRequest body para PUT /api/bookings/:id (parcial).
type UpdateBookingRequest struct {
	BranchID     *string               `json:"branch_id"`
	ServiceID    *string               `json:"service_id"`
	TherapistID  *string               `json:"therapist_id"`
	CustomerName *string               `json:"customer_name"`
	Date         *string               `json:"date"`
	Time         *string               `json:"time"`
	Status       *entity.BookingStatus `json:"status"`
	Notes        *string               `json:"notes"`
}

// UpdateBookingStatusRequest body para PATCH /api/bookings/:id/status.
type UpdateBookingStatusRequest struct {
	Status entity.BookingStatus `json:"status"`
}

// BookingDetailDTO reserva enriquecida con nombres y montos para la agenda.
// Si el servicio o terapeuta ya no existen, los campos quedan vacíos / en cero.
type BookingDetailDTO struct {
	entity.Booking
	TimeLabel       string          `json:"time_label"` // 09:30 WIB
	ServiceName     string          `json:"service_name"`
	DurationMinutes int             `json:"duration_minutes"`
	DurationLabel   string          `json:"duration_label"`
	Price           decimal.Decimal `json:"price"`
	TherapistName   string          `json:"therapist_name"`
}

// TodayDashboardDTO respuesta de GET /api/dashboard/today.
type TodayDashboardDTO struct {
	Date              string             `json:"date"`
	BranchID          string             `json:"branch_id"`
	BranchName        string             `json:"branch_name"`
	TotalBookings     int                `json:"total_bookings"`     // todas las reservas de hoy
	CompletedBookings int                `json:"completed_bookings"`
	Revenue           decimal.Decimal    `json:"revenue"`          // realizado: solo completadas
	ExpectedRevenue   decimal.Decimal    `json:"expected_revenue"` // pendientes, confirmadas y completadas; excluye canceladas
	ActiveTherapists  int                `json:"active_therapists"`
	Bookings          []BookingDetailDTO `json:"bookings"`
}
