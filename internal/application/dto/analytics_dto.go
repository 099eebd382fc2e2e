package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// AnalyticsRequest parámetros para GET /api/analytics.
// Si llegan start_date/end_date se ignora days.
type AnalyticsRequest struct {
	Days      int    `query:"days"`       // últimos N días incluyendo hoy (default config, 7)
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
}

// ── KPIs ──────────────────────────────────────────────────────────────────────

// KPIsDTO indicadores globales del período (todas las sucursales, solo reservas completadas).
type KPIsDTO struct {
	TotalRevenue        decimal.Decimal     `json:"total_revenue"`
	TotalIncentives     decimal.Decimal     `json:"total_incentives"`
	NetProfit           decimal.Decimal     `json:"net_profit"`
	MarginPct           decimal.NullDecimal `json:"margin_pct"` // null si no hubo ingresos
	TotalBookings       int                 `json:"total_bookings"`
	TotalInventoryValue decimal.Decimal     `json:"total_inventory_value"` // Σ stock × precio unitario
	LowStockCount       int                 `json:"low_stock_count"`
	TotalInventoryItems int                 `json:"total_inventory_items"`
}

// ── Series y rankings ─────────────────────────────────────────────────────────

// DailyRevenueDTO ingreso de un día; los días sin reservas aparecen con 0.
type DailyRevenueDTO struct {
	Date    string          `json:"date"`  // YYYY-MM-DD
	Label   string          `json:"label"` // 15/10/2026
	Revenue decimal.Decimal `json:"revenue"`
}

// BranchComparisonDTO ingreso por sucursal, ordenado de mayor a menor.
type BranchComparisonDTO struct {
	BranchID     string          `json:"branch_id"`
	BranchName   string          `json:"branch_name"`
	Revenue      decimal.Decimal `json:"revenue"`
	BookingCount int             `json:"booking_count"`
}

// ServiceStatDTO reservas e ingreso acumulado de un servicio.
type ServiceStatDTO struct {
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Category    string          `json:"category"`
	Count       int             `json:"count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ── Reporte combinado ─────────────────────────────────────────────────────────

// AnalyticsReportDTO respuesta completa de GET /api/analytics.
type AnalyticsReportDTO struct {
	Period           PeriodDTO             `json:"period"`
	KPIs             KPIsDTO               `json:"kpis"`
	DailyRevenue     []DailyRevenueDTO     `json:"daily_revenue"`
	BranchComparison []BranchComparisonDTO `json:"branch_comparison"`
	TopServices      []ServiceStatDTO      `json:"top_services"`
}
