package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"robowarehouse/internal/catalog"
	"robowarehouse/internal/client"
	"robowarehouse/internal/config"
	"robowarehouse/internal/database"
	"robowarehouse/internal/handler"
	"robowarehouse/internal/poller"
	"robowarehouse/internal/repository"
	"robowarehouse/internal/service"
)

func main() {
	cfg := config.Load()

	// Structured logger
	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("starting robowarehouse server",
		"backend_url", cfg.Backend.BaseURL,
		"catalog_source", cfg.Catalog.Source,
		"poll_interval", cfg.PollInterval.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database is only needed when the catalog lives in postgres
	var (
		db     *pgxpool.Pool
		source catalog.TableSource
	)
	if cfg.UsesDatabase() {
		slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
		var err error
		db, err = database.Connect(ctx, cfg.Database)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.RunMigrations(ctx, db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		source = repository.NewLabelRepo(db)
	}

	// Label tables are fixed for the lifetime of the process
	resolver, err := catalog.NewLoader(logger).Load(ctx, cfg.Catalog, source)
	if err != nil {
		slog.Error("failed to load label catalog", "error", err)
		os.Exit(1)
	}

	backend := client.NewBackendClient(client.BackendConfig{
		BaseURL:           cfg.Backend.BaseURL,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Timeout:           cfg.Backend.Timeout,
		Retry:             client.DefaultRetryConfig(),
	})
	defer backend.Close()

	warehouseSvc := service.NewWarehouseService(backend, resolver, backend.BaseURL())

	scanPoller := poller.New(warehouseSvc, cfg.PollInterval, logger, nil)
	go scanPoller.Run(ctx)

	var dbPinger handler.Pinger
	if db != nil {
		dbPinger = db
	}

	router := handler.NewRouter(handler.Handlers{
		Health:    handler.NewHealthHandler(backend, dbPinger),
		Status:    handler.NewStatusHandler(scanPoller),
		Scans:     handler.NewScanHandler(warehouseSvc),
		Inventory: handler.NewInventoryHandler(warehouseSvc),
		Labels:    handler.NewLabelHandler(warehouseSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}

// setupLogger creates a structured logger with the specified level
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
