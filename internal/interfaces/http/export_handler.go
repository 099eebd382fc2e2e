package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/application/export"
)

// ExportHandler payloads para los reportes descargables.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Revenue godoc
// @Summary  Datos del reporte de ingresos
// @Tags     export
// @Produce  json
// @Param    format           query  string  false  "pdf | excel (default pdf)"
// @Param    start_date       query  string  false  "YYYY-MM-DD (default primer día del mes)"
// @Param    end_date         query  string  false  "YYYY-MM-DD (default hoy)"
// @Param    branch_id        query  string  false  "ID de sucursal o 'all'"
// @Param    include_details  query  bool    false  "Desglose por servicio y terapeuta (default true)"
// @Success  200  {object}  dto.RevenueExportDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/export/revenue [get]
func (h *ExportHandler) Revenue(c *fiber.Ctx) error {
	var opts dto.ExportOptions
	if err := c.QueryParser(&opts); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.RevenueReport(c.Context(), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary  Datos del reporte de inventario
// @Tags     export
// @Produce  json
// @Param    format                  query  string  false  "pdf | excel (default pdf)"
// @Param    include_low_stock_only  query  bool    false  "Solo ítems bajo el mínimo (default false)"
// @Param    include_values          query  bool    false  "Precio unitario y valor del stock (default true)"
// @Success  200  {object}  dto.InventoryExportDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/export/inventory [get]
func (h *ExportHandler) Inventory(c *fiber.Ctx) error {
	var opts dto.ExportOptions
	if err := c.QueryParser(&opts); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.InventoryReport(c.Context(), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary  Datos del recibo de una reserva
// @Tags     export
// @Produce  json
// @Param    id  path  string  true  "ID de la reserva"
// @Success  200  {object}  dto.ReceiptDTO
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/export/receipt/{id} [get]
func (h *ExportHandler) Receipt(c *fiber.Ctx) error {
	out, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
