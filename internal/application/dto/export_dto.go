package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/pkg/format"
	"github.com/shopspring/decimal"
)

// ExportFormat formato de archivo que generará el consumidor del payload.
type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
)

// AllBranches valor de BranchID que selecciona todas las sucursales.
const AllBranches = "all"

// ExportOptions opciones de exportación. Cada campo tiene un default aplicado por Normalize:
//
//	Format              pdf              formato que usará el generador de archivos
//	StartDate/EndDate   1° del mes / hoy rango del reporte de ingresos
//	BranchID            "all"            "all" o el id de una sucursal
//	IncludeDetails      true             incluye desglose por servicio y por terapeuta
//	IncludeLowStockOnly false            inventario: solo ítems bajo el mínimo
//	IncludeValues       true             inventario: incluye precio unitario y valor del stock
type ExportOptions struct {
	Format              ExportFormat `query:"format" json:"format"`
	StartDate           string       `query:"start_date" json:"start_date"`
	EndDate             string       `query:"end_date" json:"end_date"`
	BranchID            string       `query:"branch_id" json:"branch_id"`
	IncludeDetails      *bool        `query:"include_details" json:"include_details"`
	IncludeLowStockOnly *bool        `query:"include_low_stock_only" json:"include_low_stock_only"`
	IncludeValues       *bool        `query:"include_values" json:"include_values"`
}

// Normalize aplica los defaults y valida. Devuelve domain.ErrInvalidInput envuelto si
// el formato es desconocido, alguna fecha no es YYYY-MM-DD o el inicio es posterior al fin.
func (o ExportOptions) Normalize(now time.Time) (ExportOptions, error) {
	if o.Format == "" {
		o.Format = ExportPDF
	}
	if o.Format != ExportPDF && o.Format != ExportExcel {
		return o, fmt.Errorf("export: formato %q: %w", o.Format, domain.ErrInvalidInput)
	}
	if o.StartDate == "" {
		o.StartDate = format.ISODate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	}
	if o.EndDate == "" {
		o.EndDate = format.ISODate(now)
	}
	if _, err := format.ParseISODate(o.StartDate); err != nil {
		return o, fmt.Errorf("export: start_date: %w", domain.ErrInvalidInput)
	}
	if _, err := format.ParseISODate(o.EndDate); err != nil {
		return o, fmt.Errorf("export: end_date: %w", domain.ErrInvalidInput)
	}
	if o.StartDate > o.EndDate {
		return o, fmt.Errorf("export: start_date posterior a end_date: %w", domain.ErrInvalidInput)
	}
	if o.BranchID == "" {
		o.BranchID = AllBranches
	}
	o.IncludeDetails = orDefault(o.IncludeDetails, true)
	o.IncludeLowStockOnly = orDefault(o.IncludeLowStockOnly, false)
	o.IncludeValues = orDefault(o.IncludeValues, true)
	return o, nil
}

// Details, LowStockOnly y Values leen los flags ya normalizados.
func (o ExportOptions) Details() bool      { return o.IncludeDetails != nil && *o.IncludeDetails }
func (o ExportOptions) LowStockOnly() bool { return o.IncludeLowStockOnly != nil && *o.IncludeLowStockOnly }
func (o ExportOptions) Values() bool       { return o.IncludeValues != nil && *o.IncludeValues }

func orDefault(v *bool, def bool) *bool {
	if v != nil {
		return v
	}
	return &def
}

// RevenueExportDTO payload que consume el generador PDF/Excel del reporte de ingresos.
type RevenueExportDTO struct {
	Options    ExportOptions `json:"options"`
	BranchName string        `json:"branch_name"` // "Semua Cabang" con branch_id=all
	Recap      RecapDTO      `json:"recap"`
}

// InventoryExportRow fila del reporte de inventario; los montos van en nil sin IncludeValues.
type InventoryExportRow struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Unit         string             `json:"unit"`
	CurrentStock int                `json:"current_stock"`
	MinStock     int                `json:"min_stock"`
	Status       entity.StockStatus `json:"status"`
	PricePerUnit *decimal.Decimal   `json:"price_per_unit,omitempty"`
	StockValue   *decimal.Decimal   `json:"stock_value,omitempty"`
}

// InventoryExportDTO payload del reporte de inventario.
type InventoryExportDTO struct {
	Options       ExportOptions        `json:"options"`
	Rows          []InventoryExportRow `json:"rows"`
	LowStockCount int                  `json:"low_stock_count"`
	TotalValue    *decimal.Decimal     `json:"total_value,omitempty"`
}

// ReceiptDTO datos del recibo de una reserva.
type ReceiptDTO struct {
	Booking   BookingDetailDTO `json:"booking"`
	Branch    entity.Branch    `json:"branch"`
	Service   entity.Service   `json:"service"`
	Therapist entity.Therapist `json:"therapist"`
	DateLabel string           `json:"date_label"` // Kamis, 15 Oktober 2026
	Total     string           `json:"total"`      // Rp 350.000
}
