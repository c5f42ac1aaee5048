package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"rfpulse/pkg/contracts/domain"
)

// Header returns the unified table's column header, projection order plus
// the importance bucket.
func Header() []string {
	return append(append([]string{}, domain.UnifiedColumns...), domain.ColImportance)
}

// Row renders one record in header order.
func Row(r domain.UnifiedRecord) []string {
	return []string{
		r.ID, r.SessionID, r.CompositeKey, r.StdCountry, r.CountryName,
		r.IsMobile, r.UIElement,
		r.Timestamp.Format(domain.TimestampLayout),
		r.CreatedAt.Format(domain.TimestampLayout),
		r.PageName, r.CountryResidency,
		strconv.Itoa(r.ImportantScore),
		r.Importance,
	}
}

// WriteCSV writes the unified table as a comma-delimited file with a header
// row. Zero records still writes the header.
func WriteCSV(path string, records []domain.UnifiedRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		if err := writer.Write(Row(r)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
