package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/application/scheduling"
)

// BookingHandler agenda y reservas.
type BookingHandler struct {
	uc *scheduling.SchedulingUseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *scheduling.SchedulingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List godoc
// @Summary      Reservas de un día
// @Description  Ordenadas por hora, con nombre de servicio y terapeuta resueltos.
// @Tags         bookings
// @Produce      json
// @Param        branch_id  query  string  false  "ID de sucursal o 'all' (default todas)"
// @Param        date       query  string  false  "YYYY-MM-DD (default hoy)"
// @Success      200  {array}   dto.BookingDetailDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForDate(c.Context(), c.Query("branch_id"), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Slots godoc
// @Summary  Turnos disponibles de la grilla (09:00–20:30 cada 30 min)
// @Tags     bookings
// @Produce  json
// @Success  200  {array}  string
// @Router   /api/bookings/slots [get]
func (h *BookingHandler) Slots(c *fiber.Ctx) error {
	return c.JSON(scheduling.TimeSlots())
}

// Create godoc
// @Summary  Crear reserva
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateBookingRequest  true  "branch_id, service_id, therapist_id, customer_name, date, time"
// @Success  201  {object}  dto.BookingDetailDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
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
// @Summary  Actualizar reserva (parcial)
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id    path  string                    true  "ID de la reserva"
// @Param    body  body  dto.UpdateBookingRequest  true  "campos a modificar"
// @Success  200  {object}  dto.BookingDetailDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary  Cambiar estado de una reserva
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id    path  string                          true  "ID de la reserva"
// @Param    body  body  dto.UpdateBookingStatusRequest  true  "pending | confirmed | completed | cancelled"
// @Success  200  {object}  dto.BookingDetailDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary  Eliminar reserva
// @Tags     bookings
// @Param    id  path  string  true  "ID de la reserva"
// @Success  204
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
