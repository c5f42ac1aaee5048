// Package dashboard computes everything the dashboard shows: the static
// scorecards and the six chart panels. Each panel is a pure function of
// (table, filter state) and re-filters the full in-memory table on every
// invocation; the table is small enough that no shared cache is kept.
package dashboard

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"rfpulse/pkg/contracts/domain"
)

// LoadTable reads the unified table from its CSV artifact. The dashboard
// calls this once at startup; the records are read-only afterwards.
func LoadTable(path string) ([]domain.UnifiedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open unified table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse unified table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("unified table %s has no header", path)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	required := append(append([]string{}, domain.UnifiedColumns...), domain.ColImportance)
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("unified table %s is missing column %s", path, name)
		}
	}

	records := make([]domain.UnifiedRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		field := func(name string) string { return row[index[name]] }

		score, err := strconv.Atoi(field(domain.ColImportantScore))
		if err != nil {
			return nil, fmt.Errorf("row %d: non-numeric important_score %q", n+1, field(domain.ColImportantScore))
		}
		ts, _ := time.Parse(domain.TimestampLayout, field(domain.ColTimestamp))
		created, _ := time.Parse(domain.TimestampLayout, field(domain.ColCreatedAt))

		records = append(records, domain.UnifiedRecord{
			ID:               field(domain.ColID),
			SessionID:        field(domain.ColSessionID),
			CompositeKey:     field(domain.ColCompositeKey),
			StdCountry:       field(domain.ColStdCountry),
			CountryName:      field(domain.ColCountryName),
			IsMobile:         field(domain.ColIsMobile),
			UIElement:        field(domain.ColUIElement),
			Timestamp:        ts,
			CreatedAt:        created,
			PageName:         field(domain.ColPageName),
			CountryResidency: field(domain.ColCountryResidency),
			ImportantScore:   score,
			Importance:       field(domain.ColImportance),
		})
	}
	return records, nil
}

// DateRange returns the minimum and maximum timestamps of the table, the
// default bounds of the date filter. ok is false for an empty table.
func DateRange(records []domain.UnifiedRecord) (min, max time.Time, ok bool) {
	for _, r := range records {
		if r.Timestamp.IsZero() {
			continue
		}
		if !ok || r.Timestamp.Before(min) {
			min = r.Timestamp
		}
		if !ok || r.Timestamp.After(max) {
			max = r.Timestamp
		}
		ok = true
	}
	return min, max, ok
}

// Countries returns the distinct country names present, sorted by
// descending row count, for populating the country filter control.
func Countries(records []domain.UnifiedRecord) []string {
	counts := countBy(records, func(r domain.UnifiedRecord) string { return r.CountryName })
	out := make([]string, 0, len(counts))
	for _, nv := range sortedByCount(counts) {
		out = append(out, nv.Name)
	}
	return out
}
