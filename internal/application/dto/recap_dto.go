package dto

import (
	"github.com/jhoicas/Spacity-api/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// RecapRequest parámetros para el recap diario y el desglose por rango.
type RecapRequest struct {
	BranchID  string `query:"branch_id"`  // id o "all"
	Date      string `query:"date"`       // recap diario; default hoy
	StartDate string `query:"start_date"` // desglose; default primer día del mes
	EndDate   string `query:"end_date"`   // desglose; default hoy
}

// TherapistPerformanceDTO desempeño de un terapeuta en el período.
type TherapistPerformanceDTO struct {
	TherapistID    string          `json:"therapist_id"`
	TherapistName  string          `json:"therapist_name"`
	BookingCount   int             `json:"booking_count"`
	TotalMinutes   int             `json:"total_minutes"`
	TotalIncentive decimal.Decimal `json:"total_incentive"`
}

// BranchSplitDTO reparto de una sucursal cuando el recap cubre todas.
type BranchSplitDTO struct {
	BranchID   string          `json:"branch_id"`
	BranchName string          `json:"branch_name"`
	NetProfit  decimal.Decimal `json:"net_profit"`
	Split      finance.Split   `json:"split"`
}

// RecapDTO recap de un día o de un rango: mismos campos en ambos casos.
type RecapDTO struct {
	BranchID             string                    `json:"branch_id"`
	BranchName           string                    `json:"branch_name"`
	Period               PeriodDTO                 `json:"period"`
	BookingCount         int                       `json:"booking_count"`
	TotalRevenue         decimal.Decimal           `json:"total_revenue"`
	TotalIncentives      decimal.Decimal           `json:"total_incentives"`
	NetProfit            decimal.Decimal           `json:"net_profit"`
	MarginPct            decimal.NullDecimal       `json:"margin_pct"`
	ProfitSharing        finance.Split             `json:"profit_sharing"`
	BranchSplits         []BranchSplitDTO          `json:"branch_splits,omitempty"` // solo con branch_id=all
	ServiceBreakdown     []ServiceStatDTO          `json:"service_breakdown"`
	TherapistPerformance []TherapistPerformanceDTO `json:"therapist_performance"`
}
