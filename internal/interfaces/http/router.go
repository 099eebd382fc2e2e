package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/catalog"
	"github.com/jhoicas/Spacity-api/internal/application/export"
	"github.com/jhoicas/Spacity-api/internal/application/inventory"
	"github.com/jhoicas/Spacity-api/internal/application/scheduling"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *catalog.CatalogUseCase
	SchedulingUC *scheduling.SchedulingUseCase
	InventoryUC  *inventory.InventoryUseCase
	AnalyticsUC  *analytics.AnalyticsUseCase
	DashboardUC  *analytics.DashboardUseCase
	RecapUC      *analytics.RecapUseCase
	ExportUC     *export.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sucursales y terapeutas (solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/branches", catalogHandler.ListBranches)
	api.Get("/therapists", catalogHandler.ListTherapists)
	for _, path := range []string{"/branches", "/therapists"} {
		api.Post(path, readOnly)
		api.Put(path+"/:id", readOnly)
		api.Delete(path+"/:id", readOnly)
	}

	// Servicios
	services := api.Group("/services")
	services.Get("/", catalogHandler.ListServices)
	services.Get("/grouped", catalogHandler.GroupedServices)
	services.Post("/", catalogHandler.CreateService)
	services.Put("/:id", catalogHandler.UpdateService)
	services.Delete("/:id", catalogHandler.DeleteService)

	// Reservas
	bookings := api.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.SchedulingUC)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/slots", bookingHandler.Slots)
	bookings.Post("/", bookingHandler.Create)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Patch("/:id/status", bookingHandler.UpdateStatus)
	bookings.Delete("/:id", bookingHandler.Delete)

	// Inventario
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.Overview)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Post("/", inventoryHandler.Create)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Post("/:id/adjust", inventoryHandler.Adjust)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Tablero, analítica y recaps
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.DashboardUC, deps.RecapUC)
	api.Get("/dashboard/today", analyticsHandler.Today)
	api.Get("/analytics", analyticsHandler.Report)
	recap := api.Group("/recap")
	recap.Get("/daily", analyticsHandler.DailyRecap)
	recap.Get("/breakdown", analyticsHandler.IncomeBreakdown)

	// Exportaciones (payloads; el archivo lo genera el cliente)
	exp := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exp.Get("/revenue", exportHandler.Revenue)
	exp.Get("/inventory", exportHandler.Inventory)
	exp.Get("/receipt/:id", exportHandler.Receipt)
}
