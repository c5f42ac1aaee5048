package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"rfpulse/pkg/contracts/domain"
)

// WriteParquet writes the unified table as a columnar parquet file. The
// schema is derived from the record struct tags; zero records writes an
// empty file with the schema intact.
func WriteParquet(path string, records []domain.UnifiedRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := parquet.WriteFile(path, records); err != nil {
		return fmt.Errorf("failed to write parquet file: %w", err)
	}
	return nil
}

// ReadParquet reads a unified table back from a parquet file.
func ReadParquet(path string) ([]domain.UnifiedRecord, error) {
	records, err := parquet.ReadFile[domain.UnifiedRecord](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return records, nil
}
