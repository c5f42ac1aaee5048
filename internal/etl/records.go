package etl

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"

	"rfpulse/pkg/contracts/domain"
)

// ToRecords converts the unified dataframe into typed records for the
// sinks. The frame must carry the fixed projection plus the importance
// column.
func ToRecords(unified dataframe.DataFrame) ([]domain.UnifiedRecord, error) {
	if unified.Err != nil {
		return nil, fmt.Errorf("unified table has errors: %w", unified.Err)
	}

	records := unified.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("unified table has no header")
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	for _, name := range append(append([]string{}, domain.UnifiedColumns...), domain.ColImportance) {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("unified table is missing column %s", name)
		}
	}

	out := make([]domain.UnifiedRecord, 0, len(records)-1)
	for _, row := range records[1:] {
		field := func(name string) string { return row[index[name]] }

		score, err := parseScore(field(domain.ColImportantScore))
		if err != nil {
			return nil, err
		}
		ts, _ := time.Parse(domain.TimestampLayout, field(domain.ColTimestamp))
		created, _ := time.Parse(domain.TimestampLayout, field(domain.ColCreatedAt))

		out = append(out, domain.UnifiedRecord{
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
	return out, nil
}

func parseScore(raw string) (int, error) {
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("non-numeric important_score %q: %w", raw, err)
	}
	return score, nil
}
