package etl

import (
	"strings"

	"rfpulse/pkg/contracts/domain"
)

// Sentinel values that appear in the raw exports.
const (
	sentinelRef     = "#REF!"
	missingCountry  = "none"
	excludedCountry = "West Bank"
)

// Clean applies the per-table cleanup: duplicate removal, sentinel
// scrubbing, missing-value filling, and whitespace trimming. Every value
// stays a string; numeric coercion happens at projection time where a
// failure is fatal.
func Clean(raw RawTables) RawTables {
	out := RawTables{}

	// The conversions export carries duplicated ids for this country; the
	// rows are dropped wholesale before generic dedup.
	conversions := dropRowsWhere(raw.Conversions, domain.ColCountryName, func(v string) bool {
		return v == excludedCountry
	})
	conversions = dropDuplicateRows(conversions)
	conversions = mutateColumn(conversions, domain.ColCountryName, func(v string) string {
		return strings.TrimSpace(strings.ReplaceAll(v, "_", ""))
	})
	conversions = mutateColumn(conversions, domain.ColMeasurementCategory, strings.TrimSpace)
	conversions = mutateColumn(conversions, domain.ColUIElement, strings.TrimSpace)
	out.Conversions = conversions

	mapping := dropDuplicateRows(raw.Mapping)
	mapping = dropRowsWithEmpty(mapping)
	mapping = mutateColumn(mapping, domain.ColMeasurementCategory, strings.TrimSpace)
	mapping = mutateColumn(mapping, domain.ColPageCategory, strings.TrimSpace)
	out.Mapping = mapping

	partner := dropDuplicateRows(raw.Partner)
	partner = mutateColumn(partner, domain.ColImportantScore, func(v string) string {
		if strings.Contains(v, sentinelRef) {
			return "0"
		}
		return strings.TrimSpace(v)
	})
	partner = mutateColumn(partner, domain.ColIPCountry, func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return missingCountry
		}
		return strings.TrimSpace(strings.ReplaceAll(v, "-", ""))
	})
	partner = mutateColumn(partner, domain.ColCountryResidency, strings.TrimSpace)
	out.Partner = partner

	return out
}
