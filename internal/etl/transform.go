package etl

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"rfpulse/pkg/contracts/domain"
)

// Transformer runs the full cleaning, matching, and joining sequence. It is
// pure table computation: no terminal I/O, no sink access.
type Transformer struct {
	logger *slog.Logger
	std    *CountryStandardizer
}

// NewTransformer creates a transformer. A nil logger falls back to
// slog.Default.
func NewTransformer(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{
		logger: logger.With(slog.String("component", "transformer")),
		std:    NewCountryStandardizer(),
	}
}

// Transform produces the unified table from the raw sources: clean,
// standardize countries, fuzzy-match categories and countries, build
// composite keys, dedup, inner-join, project to the fixed schema, and
// derive the importance bucket.
func (t *Transformer) Transform(raw RawTables) (dataframe.DataFrame, error) {
	if err := checkSources(raw); err != nil {
		return dataframe.DataFrame{}, err
	}

	raw = Clean(raw)
	t.logger.Info("sources cleaned",
		slog.Int("partner_rows", raw.Partner.Nrow()),
		slog.Int("mapping_rows", raw.Mapping.Nrow()),
		slog.Int("conversion_rows", raw.Conversions.Nrow()))

	// Standardize conversion country names first: the partner fuzzy pass
	// matches against the standardized vocabulary.
	conversions := mutateColumn(raw.Conversions, domain.ColCountryName, t.std.Standardize)

	categoryMatcher := NewMatcher(raw.Mapping.Col(domain.ColMeasurementCategory).Records(), CategoryThreshold)
	conversions = deriveColumn(conversions, domain.ColMeasurementCategory,
		domain.ColMatchedDescription, categoryMatcher.MatchOrEmpty)

	lookup := BuildCategoryLookup(raw.Mapping)
	conversions = deriveColumn(conversions, domain.ColMatchedDescription,
		domain.ColPageName, func(matched string) string { return lookup[matched] })

	partner := mutateColumn(raw.Partner, domain.ColIPCountry, t.std.Standardize)
	countryMatcher := NewMatcher(uniqueValues(conversions, domain.ColCountryName), CountryThreshold)
	partner = deriveColumn(partner, domain.ColIPCountry,
		domain.ColStdCountry, countryMatcher.MatchOrEmpty)

	// Canonical timestamp text: partner carries UNIX seconds, conversions a
	// textual datetime.
	partner = mutateColumn(partner, domain.ColTimestamp, normalizeUnixTimestamp)
	conversions = mutateColumn(conversions, domain.ColCreatedAt, normalizeTextTimestamp)

	partner = withCompositeKey(partner, domain.ColStdCountry, domain.ColTimestamp)
	conversions = withCompositeKey(conversions, domain.ColCountryName, domain.ColCreatedAt)

	// Rows that could not build a key, then rows whose key repeats. After
	// this the key is unique within each table.
	partner = dropRowsWhere(partner, domain.ColCompositeKey, func(v string) bool { return v == "" })
	conversions = dropRowsWhere(conversions, domain.ColCompositeKey, func(v string) bool { return v == "" })
	partner = dropNonUniqueKeys(partner, domain.ColCompositeKey)
	conversions = dropNonUniqueKeys(conversions, domain.ColCompositeKey)

	joined := conversions.InnerJoin(partner, domain.ColCompositeKey)
	if joined.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to join tables: %w", joined.Err)
	}
	t.logger.Info("tables joined", slog.Int("rows", joined.Nrow()))

	unified := joined.Select(domain.UnifiedColumns)
	if unified.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to project unified columns: %w", unified.Err)
	}

	return bucketImportance(unified)
}

// checkSources guards the known fragility of a partial load: a source that
// failed to load surfaces here as a missing table.
func checkSources(raw RawTables) error {
	for _, s := range []struct {
		name string
		df   dataframe.DataFrame
	}{
		{PartnerFile, raw.Partner},
		{MappingFile, raw.Mapping},
		{ConversionsFile, raw.Conversions},
	} {
		if s.df.Ncol() == 0 {
			return fmt.Errorf("source %s was not loaded", s.name)
		}
	}
	return nil
}

// BuildCategoryLookup builds the measurement-category to page-category map.
// Duplicate keys in the mapping table resolve last-write-wins.
func BuildCategoryLookup(mapping dataframe.DataFrame) map[string]string {
	categories := mapping.Col(domain.ColMeasurementCategory).Records()
	pages := mapping.Col(domain.ColPageCategory).Records()

	lookup := make(map[string]string, len(categories))
	for i, c := range categories {
		if i < len(pages) {
			lookup[c] = pages[i]
		}
	}
	return lookup
}

// withCompositeKey appends the composite key column built from a country
// column and a canonical timestamp column.
func withCompositeKey(df dataframe.DataFrame, countryCol, tsCol string) dataframe.DataFrame {
	countries := df.Col(countryCol).Records()
	stamps := df.Col(tsCol).Records()

	keys := make([]string, len(countries))
	for i := range countries {
		keys[i] = CompositeKey(countries[i], stamps[i])
	}
	return df.Mutate(series.New(keys, series.String, domain.ColCompositeKey))
}

// bucketImportance coerces important_score to integer (fatal on failure)
// and appends the importance bucket as a plain string column.
func bucketImportance(unified dataframe.DataFrame) (dataframe.DataFrame, error) {
	rawScores := unified.Col(domain.ColImportantScore).Records()

	scores := make([]int, len(rawScores))
	buckets := make([]string, len(rawScores))
	for i, raw := range rawScores {
		score, err := strconv.Atoi(raw)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("non-numeric important_score %q: %w", raw, err)
		}
		scores[i] = score
		buckets[i] = domain.BucketImportance(score)
	}

	unified = unified.Mutate(series.New(scores, series.Int, domain.ColImportantScore))
	unified = unified.Mutate(series.New(buckets, series.String, domain.ColImportance))
	if unified.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to derive importance: %w", unified.Err)
	}
	return unified, nil
}
