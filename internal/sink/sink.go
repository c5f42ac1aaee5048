// Package sink persists the unified table to one of the supported
// destinations: a columnar parquet file, a delimited CSV file, an XLSX
// workbook, or an embedded SQLite database (file-backed or in-memory).
// Sink selection is interactive at run time; the writers themselves are
// plain functions over typed records.
package sink

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"rfpulse/pkg/contracts/domain"
)

// Destination kinds and file formats.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"

	FormatParquet = "parquet"
	FormatCSV     = "csv"
	FormatXLSX    = "xlsx"
)

// Config selects and parameterizes a sink.
type Config struct {
	Kind     string `validate:"required,oneof=file sqlite"`
	Format   string `validate:"required_if=Kind file,omitempty,oneof=parquet csv xlsx"`
	Path     string `validate:"required_if=Kind file"`
	Table    string `validate:"required_if=Kind sqlite,omitempty,sqlite_ident"`
	InMemory bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// SQLite identifiers are interpolated into DDL, so they are restricted
	// to a safe character set.
	_ = v.RegisterValidation("sqlite_ident", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for i, r := range s {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			case r >= '0' && r <= '9':
				if i == 0 {
					return false
				}
			default:
				return false
			}
		}
		return true
	})
	return v
}

// Validate checks the configuration before any write is attempted.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid sink config: %w", err)
	}
	return nil
}

// Persist writes the unified records to the configured sink. A write
// failure aborts only this branch; the caller decides whether to retry with
// a different sink. Zero records is not an error: file sinks still write
// their header or schema.
func Persist(logger *slog.Logger, records []domain.UnifiedRecord, cfg Config) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	switch cfg.Kind {
	case KindFile:
		switch cfg.Format {
		case FormatParquet:
			err = WriteParquet(cfg.Path, records)
		case FormatCSV:
			err = WriteCSV(cfg.Path, records)
		case FormatXLSX:
			err = WriteXLSX(cfg.Path, records)
		}
	case KindSQLite:
		err = WriteSQLite(cfg, records)
	}
	if err != nil {
		logger.Error("sink write failed",
			slog.String("kind", cfg.Kind),
			slog.String("format", cfg.Format),
			slog.String("error", err.Error()))
		return err
	}

	logger.Info("unified table persisted",
		slog.String("kind", cfg.Kind),
		slog.String("format", cfg.Format),
		slog.String("path", cfg.Path),
		slog.String("table", cfg.Table),
		slog.Int("rows", len(records)))
	return nil
}
