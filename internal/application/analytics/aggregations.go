package analytics

import (
	"sort"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/jhoicas/Spacity-api/pkg/format"
	"github.com/shopspring/decimal"
)

// DefaultTopServices tamaño del ranking de servicios.
const DefaultTopServices = 5

// DailyRevenue genera un bucket por cada día de [start, end], aunque no tenga reservas.
// Los días salen de iterar el rango, no de las fechas de las reservas.
func DailyRevenue(bookings []entity.Booking, ix *finance.Index, start, end string) ([]dto.DailyRevenueDTO, error) {
	days, err := format.DaysInRange(start, end)
	if err != nil {
		return nil, err
	}
	series := make([]dto.DailyRevenueDTO, len(days))
	pos := make(map[string]int, len(days))
	for i, d := range days {
		series[i] = dto.DailyRevenueDTO{Date: d, Label: format.Date(d, format.DateShort), Revenue: decimal.Zero}
		pos[d] = i
	}
	for _, b := range bookings {
		i, inRange := pos[b.Date]
		if !inRange {
			continue
		}
		if s, ok := ix.Service(b.ServiceID); ok {
			series[i].Revenue = series[i].Revenue.Add(s.Price)
		}
	}
	return series, nil
}

// BranchComparison ingreso y cantidad de reservas por sucursal, de mayor a menor ingreso.
// Los empates conservan el orden original de las sucursales.
func BranchComparison(branches []entity.Branch, bookings []entity.Booking, ix *finance.Index) []dto.BranchComparisonDTO {
	out := make([]dto.BranchComparisonDTO, 0, len(branches))
	for _, br := range branches {
		own := ForBranch(bookings, br.ID)
		out = append(out, dto.BranchComparisonDTO{
			BranchID:     br.ID,
			BranchName:   br.Name,
			Revenue:      ix.Revenue(own),
			BookingCount: len(own),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// ServiceBreakdown agrupa por servicio resuelto y ordena por ingreso descendente.
// Las reservas con servicio inexistente se omiten; no hay relleno con ceros.
func ServiceBreakdown(bookings []entity.Booking, ix *finance.Index) []dto.ServiceStatDTO {
	out := []dto.ServiceStatDTO{}
	pos := make(map[string]int)
	for _, b := range bookings {
		s, ok := ix.Service(b.ServiceID)
		if !ok {
			continue
		}
		i, seen := pos[s.ID]
		if !seen {
			i = len(out)
			pos[s.ID] = i
			out = append(out, dto.ServiceStatDTO{
				ServiceID:   s.ID,
				ServiceName: s.Name,
				Category:    s.Category,
				Revenue:     decimal.Zero,
			})
		}
		out[i].Count++
		out[i].Revenue = out[i].Revenue.Add(s.Price)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// TopServices primeros n de ServiceBreakdown.
func TopServices(bookings []entity.Booking, ix *finance.Index, n int) []dto.ServiceStatDTO {
	all := ServiceBreakdown(bookings, ix)
	if n >= 0 && len(all) > n {
		return all[:n]
	}
	return all
}

// InventoryMetrics valor total del stock y cantidad de ítems bajo el mínimo.
func InventoryMetrics(items []entity.InventoryItem) (value decimal.Decimal, lowStock int) {
	value = decimal.Zero
	for _, it := range items {
		value = value.Add(it.StockValue())
		if it.IsLowStock() {
			lowStock++
		}
	}
	return value, lowStock
}

// TherapistPerformance convierte el acumulado del motor al DTO de presentación.
func TherapistPerformance(bookings []entity.Booking, ix *finance.Index) []dto.TherapistPerformanceDTO {
	perf := ix.Performance(bookings)
	out := make([]dto.TherapistPerformanceDTO, 0, len(perf))
	for _, p := range perf {
		out = append(out, dto.TherapistPerformanceDTO{
			TherapistID:    p.Therapist.ID,
			TherapistName:  p.Therapist.Name,
			BookingCount:   p.BookingCount,
			TotalMinutes:   p.TotalMinutes,
			TotalIncentive: p.TotalIncentive,
		})
	}
	return out
}

// BookingDetails enriquece reservas con nombres de servicio y terapeuta, ordenadas por hora.
func BookingDetails(bookings []entity.Booking, ix *finance.Index) []dto.BookingDetailDTO {
	out := make([]dto.BookingDetailDTO, 0, len(bookings))
	for _, b := range bookings {
		d := dto.BookingDetailDTO{Booking: b, TimeLabel: format.Time(b.Time), Price: decimal.Zero}
		if s, ok := ix.Service(b.ServiceID); ok {
			d.ServiceName = s.Name
			d.DurationMinutes = s.DurationMinutes
			d.DurationLabel = format.Duration(s.DurationMinutes)
			d.Price = s.Price
		}
		if t, ok := ix.Therapist(b.TherapistID); ok {
			d.TherapistName = t.Name
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// GroupByCategory agrupa en orden de primera aparición de la categoría, conservando el
// orden original dentro de cada grupo.
func GroupByCategory[T any](items []T, category func(T) string) []dto.CategoryGroup[T] {
	out := []dto.CategoryGroup[T]{}
	pos := make(map[string]int)
	for _, it := range items {
		c := category(it)
		i, seen := pos[c]
		if !seen {
			i = len(out)
			pos[c] = i
			out = append(out, dto.CategoryGroup[T]{Category: c})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}
