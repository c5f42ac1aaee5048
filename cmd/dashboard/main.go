package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rfpulse/internal/config"
	"rfpulse/internal/dashboard"
	"rfpulse/internal/etl"
	"rfpulse/internal/infrastructure"
	transporthttp "rfpulse/internal/transport/http"
)

func main() {
	tablePath := flag.String("table", "", "path to the unified table CSV (defaults to paths.unified_file)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	if *tablePath == "" {
		*tablePath = cfg.Paths.UnifiedFile
	}

	records, err := dashboard.LoadTable(*tablePath)
	if err != nil {
		logger.Error("failed to load unified table",
			slog.String("path", *tablePath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("unified table loaded",
		slog.String("path", *tablePath),
		slog.Int("rows", len(records)))

	locate := etl.NewCountryStandardizer().Centroid
	router := transporthttp.NewRouter(logger, cfg, records, locate)

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("dashboard stopped")
}

func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.LoadFromFile(configFile)
	}
	return config.Load()
}
