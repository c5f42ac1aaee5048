package dashboard

import (
	"sort"

	"rfpulse/pkg/contracts/domain"
)

const topN = 10

// NameValue is one labeled measurement in a panel.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TrendSeries is the daily conversion counts of one country.
type TrendSeries struct {
	Country string    `json:"country"`
	Counts  []float64 `json:"counts"` // aligned with the shared date axis
}

// CountryBubble is one country on the world map.
type CountryBubble struct {
	Country       string  `json:"country"`
	Count         int     `json:"count"`
	AvgImportance float64 `json:"avg_importance"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

// filterBy applies only the filter dimensions a panel declares; every
// panel re-scans the full table.
func filterBy(records []domain.UnifiedRecord, f domain.FilterState) []domain.UnifiedRecord {
	out := make([]domain.UnifiedRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func countBy(records []domain.UnifiedRecord, key func(domain.UnifiedRecord) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// sortedByCount orders labels by descending count, name ascending on ties.
func sortedByCount(counts map[string]int) []NameValue {
	out := make([]NameValue, 0, len(counts))
	for name, n := range counts {
		out = append(out, NameValue{Name: name, Value: float64(n)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CountryPie returns the top-10 countries by row count among rows matching
// the country filter, each as a percentage of the filtered distinct
// composite-key count. The percentages sum to at most 100.
func CountryPie(records []domain.UnifiedRecord, f domain.FilterState) []NameValue {
	filtered := filterBy(records, domain.FilterState{Countries: f.Countries})

	distinct := make(map[string]struct{}, len(filtered))
	for _, r := range filtered {
		distinct[r.CompositeKey] = struct{}{}
	}
	if len(distinct) == 0 {
		return nil
	}

	top := sortedByCount(countBy(filtered, func(r domain.UnifiedRecord) string { return r.CountryName }))
	if len(top) > topN {
		top = top[:topN]
	}
	for i := range top {
		top[i].Value = top[i].Value / float64(len(distinct)) * 100
	}
	return top
}

// DevicePie returns row counts split by the device-type flag, honoring the
// device selection ("All" disables the filter).
func DevicePie(records []domain.UnifiedRecord, f domain.FilterState) []NameValue {
	filtered := filterBy(records, domain.FilterState{Device: f.Device})
	return sortedByCount(countBy(filtered, func(r domain.UnifiedRecord) string { return r.IsMobile }))
}

// ConversionTrend returns daily row counts, one series per country, for
// rows matching the country selection and the inclusive date range. The
// date axis is shared across series.
func ConversionTrend(records []domain.UnifiedRecord, f domain.FilterState) ([]string, []TrendSeries) {
	filtered := filterBy(records, domain.FilterState{Countries: f.Countries, Start: f.Start, End: f.End})

	perDay := make(map[string]map[string]int) // country -> date -> count
	dateSet := make(map[string]struct{})
	for _, r := range filtered {
		if r.Timestamp.IsZero() {
			continue
		}
		day := r.Timestamp.Format("2006-01-02")
		if perDay[r.CountryName] == nil {
			perDay[r.CountryName] = make(map[string]int)
		}
		perDay[r.CountryName][day]++
		dateSet[day] = struct{}{}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	countries := make([]string, 0, len(perDay))
	for c := range perDay {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	series := make([]TrendSeries, 0, len(countries))
	for _, c := range countries {
		counts := make([]float64, len(dates))
		for i, d := range dates {
			counts[i] = float64(perDay[c][d])
		}
		series = append(series, TrendSeries{Country: c, Counts: counts})
	}
	return dates, series
}

// UIElementBar returns the top-10 UI elements by row count among rows
// matching the country filter, descending.
func UIElementBar(records []domain.UnifiedRecord, f domain.FilterState) []NameValue {
	filtered := filterBy(records, domain.FilterState{Countries: f.Countries})
	top := sortedByCount(countBy(filtered, func(r domain.UnifiedRecord) string { return r.UIElement }))
	if len(top) > topN {
		top = top[:topN]
	}
	return top
}

// WorldBubbles returns one bubble per country among rows matching the
// country filter: row count for size, mean importance score for color.
// locate resolves a country to its centroid; unlocatable countries are
// skipped.
func WorldBubbles(records []domain.UnifiedRecord, f domain.FilterState,
	locate func(string) (lat, lng float64, ok bool)) []CountryBubble {

	filtered := filterBy(records, domain.FilterState{Countries: f.Countries})

	counts := make(map[string]int)
	scores := make(map[string]int)
	for _, r := range filtered {
		counts[r.CountryName]++
		scores[r.CountryName] += r.ImportantScore
	}

	names := make([]string, 0, len(counts))
	for c := range counts {
		names = append(names, c)
	}
	sort.Strings(names)

	bubbles := make([]CountryBubble, 0, len(names))
	for _, c := range names {
		lat, lng, ok := locate(c)
		if !ok {
			continue
		}
		bubbles = append(bubbles, CountryBubble{
			Country:       c,
			Count:         counts[c],
			AvgImportance: float64(scores[c]) / float64(counts[c]),
			Lat:           lat,
			Lng:           lng,
		})
	}
	return bubbles
}

// ImportanceBar returns row counts per importance bucket, in bucket order,
// among rows matching the country filter.
func ImportanceBar(records []domain.UnifiedRecord, f domain.FilterState) []NameValue {
	filtered := filterBy(records, domain.FilterState{Countries: f.Countries})
	counts := countBy(filtered, func(r domain.UnifiedRecord) string { return r.Importance })

	out := make([]NameValue, 0, len(domain.ImportanceLabels))
	for _, label := range domain.ImportanceLabels {
		out = append(out, NameValue{Name: label, Value: float64(counts[label])})
	}
	return out
}
