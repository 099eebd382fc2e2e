package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/application/inventory"
)

// InventoryHandler insumos del spa.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Overview godoc
// @Summary      Inventario agrupado por categoría
// @Description  Incluye estado por ítem (critical/low/normal), contadores de alerta y valor total.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryOverviewDTO
// @Router       /api/inventory [get]
func (h *InventoryHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary  Ítems bajo el mínimo o sin existencias
// @Tags     inventory
// @Produce  json
// @Success  200  {array}  dto.InventoryItemDTO
// @Router   /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary  Crear ítem de inventario
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateInventoryRequest  true  "name, category, unit, current_stock, min_stock, price_per_unit"
// @Success  201  {object}  dto.InventoryItemDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary  Actualizar ítem (parcial)
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    id    path  string                      true  "ID del ítem"
// @Param    body  body  dto.UpdateInventoryRequest  true  "campos a modificar"
// @Success  200  {object}  dto.InventoryItemDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary  Ajustar stock (+/-); nunca queda negativo
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    id    path  string                  true  "ID del ítem"
// @Param    body  body  dto.AdjustStockRequest  true  "delta"
// @Success  200  {object}  dto.InventoryItemDTO
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AdjustStock(c.Context(), c.Params("id"), in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary  Eliminar ítem
// @Tags     inventory
// @Param    id  path  string  true  "ID del ítem"
// @Success  204
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
