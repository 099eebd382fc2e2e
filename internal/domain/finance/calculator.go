// Package finance contiene el motor de cálculo financiero del spa: ingresos, incentivos
// de terapeutas, utilidad neta y reparto de utilidades hotel/spa.
//
// Todas las funciones son puras: no filtran por estado (el llamador pasa solo reservas
// completadas si quiere ingresos realizados) y toleran referencias colgantes, que aportan cero.
package finance

import (
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	sixty   = decimal.NewFromInt(60)
	hundred = decimal.NewFromInt(100)
)

// Split reparto de la utilidad neta entre el spa y el hotel socio.
type Split struct {
	SpaAmount    decimal.Decimal `json:"spa_amount"`
	HotelAmount  decimal.Decimal `json:"hotel_amount"`
	SpaPercent   decimal.Decimal `json:"spa_percent"`
	HotelPercent decimal.Decimal `json:"hotel_percent"`
}

// Performance acumulado por terapeuta.
type Performance struct {
	Therapist      entity.Therapist `json:"therapist"`
	BookingCount   int              `json:"booking_count"`
	TotalMinutes   int              `json:"total_minutes"`
	TotalIncentive decimal.Decimal  `json:"total_incentive"`
}

// TherapistIncentive = (minutos / 60) × tarifa por hora. Sin redondeo: 90 min → 1.5 × tarifa.
func TherapistIncentive(durationMinutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(durationMinutes)).Mul(hourlyRate).Div(sixty)
}

// NetProfit = ingresos - incentivos. Puede ser negativo.
func NetProfit(revenue, incentives decimal.Decimal) decimal.Decimal {
	return revenue.Sub(incentives)
}

// ProfitSharing reparte netProfit según el porcentaje del spa.
// HotelAmount se obtiene por resta para que SpaAmount + HotelAmount == netProfit exactamente.
func ProfitSharing(netProfit, spaPercent decimal.Decimal) Split {
	spa := netProfit.Mul(spaPercent).Div(hundred)
	return Split{
		SpaAmount:    spa,
		HotelAmount:  netProfit.Sub(spa),
		SpaPercent:   spaPercent,
		HotelPercent: hundred.Sub(spaPercent),
	}
}

// MarginPercent = netProfit / revenue × 100. Con ingresos en cero el resultado es nulo
// (Valid=false); la presentación decide si muestra un guion o "0%".
func MarginPercent(netProfit, revenue decimal.Decimal) decimal.NullDecimal {
	if revenue.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(netProfit.Div(revenue).Mul(hundred))
}

// TotalRevenue suma el precio del servicio de cada reserva; servicios inexistentes aportan 0.
func TotalRevenue(bookings []entity.Booking, services []entity.Service) decimal.Decimal {
	return NewIndex(services, nil).Revenue(bookings)
}

// TotalIncentives suma los incentivos de las reservas cuyo servicio y terapeuta existen.
func TotalIncentives(bookings []entity.Booking, services []entity.Service, therapists []entity.Therapist) decimal.Decimal {
	return NewIndex(services, therapists).Incentives(bookings)
}

// TherapistPerformance agrupa por terapeuta en orden de primera aparición.
func TherapistPerformance(bookings []entity.Booking, services []entity.Service, therapists []entity.Therapist) []Performance {
	return NewIndex(services, therapists).Performance(bookings)
}

// Revenue versión indexada de TotalRevenue.
func (ix *Index) Revenue(bookings []entity.Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		if s, ok := ix.Service(b.ServiceID); ok {
			total = total.Add(s.Price)
		}
	}
	return total
}

// BookingIncentive incentivo de una reserva; ok=false si servicio o terapeuta no resuelven.
func (ix *Index) BookingIncentive(b entity.Booking) (decimal.Decimal, bool) {
	s, ok := ix.Service(b.ServiceID)
	if !ok {
		return decimal.Zero, false
	}
	t, ok := ix.Therapist(b.TherapistID)
	if !ok {
		return decimal.Zero, false
	}
	return TherapistIncentive(s.DurationMinutes, t.HourlyIncentive), true
}

// Incentives versión indexada de TotalIncentives.
func (ix *Index) Incentives(bookings []entity.Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		if inc, ok := ix.BookingIncentive(b); ok {
			total = total.Add(inc)
		}
	}
	return total
}

// Performance versión indexada de TherapistPerformance. Nunca devuelve nil.
func (ix *Index) Performance(bookings []entity.Booking) []Performance {
	out := []Performance{}
	pos := make(map[string]int)
	for _, b := range bookings {
		s, ok := ix.Service(b.ServiceID)
		if !ok {
			continue
		}
		t, ok := ix.Therapist(b.TherapistID)
		if !ok {
			continue
		}
		i, seen := pos[t.ID]
		if !seen {
			i = len(out)
			pos[t.ID] = i
			out = append(out, Performance{Therapist: t, TotalIncentive: decimal.Zero})
		}
		out[i].BookingCount++
		out[i].TotalMinutes += s.DurationMinutes
		out[i].TotalIncentive = out[i].TotalIncentive.Add(TherapistIncentive(s.DurationMinutes, t.HourlyIncentive))
	}
	return out
}
