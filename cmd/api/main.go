package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/analytics"
	"github.com/jhoicas/Spacity-api/internal/application/catalog"
	"github.com/jhoicas/Spacity-api/internal/application/export"
	"github.com/jhoicas/Spacity-api/internal/application/inventory"
	"github.com/jhoicas/Spacity-api/internal/application/scheduling"
	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"github.com/jhoicas/Spacity-api/internal/infrastructure/memstore"
	httpRouter "github.com/jhoicas/Spacity-api/internal/interfaces/http"
	"github.com/jhoicas/Spacity-api/pkg/config"
	"github.com/jhoicas/Spacity-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	var initial *entity.Snapshot
	if cfg.Store.SnapshotPath != "" {
		initial, err = memstore.LoadSnapshotFile(cfg.Store.SnapshotPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.SnapshotPath).Msg("cargar snapshot inicial")
		}
	}
	store, err := memstore.New(initial, memstore.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot inicial inválido")
	}
	snap := store.Snapshot()
	log.Info().
		Int("branches", len(snap.Branches)).
		Int("services", len(snap.Services)).
		Int("bookings", len(snap.Bookings)).
		Int("inventory", len(snap.Inventory)).
		Msg("store en memoria listo")

	recapUC := analytics.NewRecapUseCase(store, time.Now, cfg.Report.DefaultSpaPercent)

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		SwaggerFile: cfg.HTTP.SwaggerFile,
	}, log, httpRouter.RouterDeps{
		CatalogUC:    catalog.NewCatalogUseCase(store),
		SchedulingUC: scheduling.NewSchedulingUseCase(store, time.Now),
		InventoryUC:  inventory.NewInventoryUseCase(store),
		AnalyticsUC:  analytics.NewAnalyticsUseCase(store, time.Now, cfg.Report.AnalyticsDays, cfg.Report.TopServices),
		DashboardUC:  analytics.NewDashboardUseCase(store, time.Now),
		RecapUC:      recapUC,
		ExportUC:     export.NewExportUseCase(store, recapUC, time.Now),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
