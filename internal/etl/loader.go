package etl

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Raw source file names inside the data directory. The partner log is
// comma-delimited; the mapping table and the conversions log use semicolons.
const (
	PartnerFile     = "partner_data.csv"
	MappingFile     = "page_category_mapping.csv"
	ConversionsFile = "reviewfriends_conversions.csv"
)

// RawTables holds the three raw sources as loaded, before any cleaning.
type RawTables struct {
	Partner     dataframe.DataFrame
	Mapping     dataframe.DataFrame
	Conversions dataframe.DataFrame
}

// SourceError records a load failure for a single source.
type SourceError struct {
	Source string
	Err    error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

// LoadReport collects per-source load errors. A partial load is not fatal:
// the pipeline continues with whatever succeeded and fails later if a
// missing source is actually needed.
type LoadReport struct {
	Errors []SourceError
}

// Complete reports whether every source loaded.
func (r *LoadReport) Complete() bool {
	return len(r.Errors) == 0
}

// Failed reports whether the named source failed to load.
func (r *LoadReport) Failed(source string) bool {
	for _, e := range r.Errors {
		if e.Source == source {
			return true
		}
	}
	return false
}

// Loader reads the three delimited sources into dataframes.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "loader"))}
}

// Load reads the three sources from dataDir. Every column is loaded as a
// string; type coercion is a cleaning concern, not a parsing one. Load
// errors are captured per source in the report rather than returned.
func (l *Loader) Load(dataDir string) (RawTables, *LoadReport) {
	report := &LoadReport{}
	raw := RawTables{}

	load := func(name string, delim rune) dataframe.DataFrame {
		df, err := l.readCSV(filepath.Join(dataDir, name), delim)
		if err != nil {
			l.logger.Error("failed to load source",
				slog.String("source", name),
				slog.String("error", err.Error()))
			report.Errors = append(report.Errors, SourceError{Source: name, Err: err})
			return dataframe.DataFrame{}
		}
		l.logger.Info("source loaded",
			slog.String("source", name),
			slog.Int("rows", df.Nrow()),
			slog.Int("columns", df.Ncol()))
		return df
	}

	raw.Partner = load(PartnerFile, ',')
	raw.Mapping = load(MappingFile, ';')
	raw.Conversions = load(ConversionsFile, ';')

	return raw, report
}

func (l *Loader) readCSV(path string, delim rune) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("file is empty")
	}

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}
	return df, nil
}
