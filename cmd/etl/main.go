package main

import (
	"flag"
	"log/slog"
	"os"

	"rfpulse/internal/config"
	"rfpulse/internal/etl"
	"rfpulse/internal/infrastructure"
	"rfpulse/internal/sink"
)

func main() {
	dataDir := flag.String("data", "", "directory holding the three source CSV files (defaults to paths.data_dir)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{Level: "info", Format: "text", Output: "console"},
			Paths:   config.PathsConfig{DataDir: "data", SQLitePath: "data.db"},
		}
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	if *dataDir == "" {
		*dataDir = cfg.Paths.DataDir
	}

	logger.Info("starting conversion pipeline",
		slog.String("data_dir", *dataDir))

	loader := etl.NewLoader(logger)
	raw, report := loader.Load(*dataDir)
	if !report.Complete() {
		for _, srcErr := range report.Errors {
			logger.Error("source unavailable",
				slog.String("source", srcErr.Source),
				slog.String("error", srcErr.Err.Error()))
		}
	}

	unified, err := etl.NewTransformer(logger).Transform(raw)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	records, err := etl.ToRecords(unified)
	if err != nil {
		logger.Error("failed to materialize unified table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("unified table built", slog.Int("rows", len(records)))

	sinkCfg, err := sink.Prompt(os.Stdin, os.Stdout, cfg.Paths.SQLitePath)
	if err != nil {
		logger.Error("invalid sink selection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The table is already built at this point, so a sink failure is
	// reported but does not fail the run.
	if err := sink.Persist(logger, records, sinkCfg); err != nil {
		logger.Error("failed to persist unified table", slog.String("error", err.Error()))
	}

	logger.Info("pipeline complete")
}

func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.LoadFromFile(configFile)
	}
	return config.Load()
}
