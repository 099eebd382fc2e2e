package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Spacity-api/internal/application/catalog"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
)

// CatalogHandler sucursales, terapeutas y catálogo de servicios.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListBranches godoc
// @Summary  Listar sucursales
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  entity.Branch
// @Router   /api/branches [get]
func (h *CatalogHandler) ListBranches(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListBranches(c.Context()))
}

// ListTherapists godoc
// @Summary  Listar terapeutas
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  entity.Therapist
// @Router   /api/therapists [get]
func (h *CatalogHandler) ListTherapists(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListTherapists(c.Context()))
}

// ListServices godoc
// @Summary  Listar servicios
// @Tags     services
// @Produce  json
// @Param    active  query  bool  false  "Solo servicios activos"
// @Success  200  {array}  entity.Service
// @Router   /api/services [get]
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListServices(c.Context(), c.QueryBool("active")))
}

// GroupedServices godoc
// @Summary  Servicios agrupados por categoría
// @Tags     services
// @Produce  json
// @Param    active  query  bool  false  "Solo servicios activos"
// @Success  200  {array}  dto.CategoryGroup[entity.Service]
// @Router   /api/services/grouped [get]
func (h *CatalogHandler) GroupedServices(c *fiber.Ctx) error {
	return c.JSON(h.uc.GroupedServices(c.Context(), c.QueryBool("active")))
}

// CreateService godoc
// @Summary  Crear servicio
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateServiceRequest  true  "name, category, duration_minutes, price"
// @Success  201  {object}  entity.Service
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/services [post]
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	s, err := h.uc.CreateService(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// UpdateService godoc
// @Summary  Actualizar servicio (parcial)
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id    path  string                    true  "ID del servicio"
// @Param    body  body  dto.UpdateServiceRequest  true  "campos a modificar"
// @Success  200  {object}  entity.Service
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	s, err := h.uc.UpdateService(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s)
}

// DeleteService godoc
// @Summary  Eliminar servicio
// @Tags     services
// @Param    id  path  string  true  "ID del servicio"
// @Success  204
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.uc.DeleteService(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
