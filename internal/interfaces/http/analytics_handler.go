package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/dto"
)

// AnalyticsHandler tablero del día, analítica y recaps.
type AnalyticsHandler struct {
	analytics *analytics.AnalyticsUseCase
	dashboard *analytics.DashboardUseCase
	recap     *analytics.RecapUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(a *analytics.AnalyticsUseCase, d *analytics.DashboardUseCase, r *analytics.RecapUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: a, dashboard: d, recap: r}
}

// Today godoc
// @Summary      Tablero del día
// @Description  Reservas de hoy (todos los estados), ingreso realizado y esperado, terapeutas activos.
// @Tags         dashboard
// @Produce      json
// @Param        branch_id  query  string  false  "ID de sucursal o 'all'"
// @Success      200  {object}  dto.TodayDashboardDTO
// @Router       /api/dashboard/today [get]
func (h *AnalyticsHandler) Today(c *fiber.Ctx) error {
	out, err := h.dashboard.GetToday(c.Context(), c.Query("branch_id", dto.AllBranches))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Analítica de ingresos
// @Description  KPIs, serie diaria, comparativo por sucursal y top 5 servicios sobre reservas completadas.
// @Tags         analytics
// @Produce      json
// @Param        days        query  int     false  "Últimos N días incluyendo hoy (default 7)"
// @Param        start_date  query  string  false  "YYYY-MM-DD; con end_date reemplaza a days"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.AnalyticsReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	var req dto.AnalyticsRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	out, err := h.analytics.GetReport(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DailyRecap godoc
// @Summary  Recap diario con reparto spa/hotel
// @Tags     recap
// @Produce  json
// @Param    branch_id  query  string  false  "ID de sucursal o 'all'"
// @Param    date       query  string  false  "YYYY-MM-DD (default hoy)"
// @Success  200  {object}  dto.RecapDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/recap/daily [get]
func (h *AnalyticsHandler) DailyRecap(c *fiber.Ctx) error {
	var req dto.RecapRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	out, err := h.recap.GetDailyRecap(c.Context(), req.BranchID, req.Date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// IncomeBreakdown godoc
// @Summary  Desglose de ingresos por rango
// @Tags     recap
// @Produce  json
// @Param    branch_id   query  string  false  "ID de sucursal o 'all'"
// @Param    start_date  query  string  false  "YYYY-MM-DD (default primer día del mes)"
// @Param    end_date    query  string  false  "YYYY-MM-DD (default hoy)"
// @Success  200  {object}  dto.RecapDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/recap/breakdown [get]
func (h *AnalyticsHandler) IncomeBreakdown(c *fiber.Ctx) error {
	var req dto.RecapRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	out, err := h.recap.GetIncomeBreakdown(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
