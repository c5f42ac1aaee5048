package domain

import "time"

// Column names of the three raw sources. Handlers and transforms refer to
// columns by these literals; the input schemas are fixed but implicit.
const (
	ColID                  = "id"
	ColSessionID           = "session_id"
	ColCountryName         = "country_name"
	ColMeasurementCategory = "measurement_category"
	ColUIElement           = "ui_element"
	ColCreatedAt           = "created_at"
	ColIsMobile            = "is_mobile"
	ColIPCountry           = "ip_country"
	ColCountryResidency    = "country_residency"
	ColImportantScore      = "important_score"
	ColTimestamp           = "timestamp"
	ColPageCategory        = "page_category"

	ColStdCountry         = "std_country"
	ColMatchedDescription = "matched_description"
	ColPageName           = "page_name"
	ColCompositeKey       = "composite_key"
	ColImportance         = "importance"
)

// UnifiedColumns is the fixed projection of the joined table, in output order.
// The importance bucket is appended as the final column by feature engineering.
var UnifiedColumns = []string{
	ColID, ColSessionID, ColCompositeKey, ColStdCountry, ColCountryName,
	ColIsMobile, ColUIElement, ColTimestamp, ColCreatedAt,
	ColPageName, ColCountryResidency, ColImportantScore,
}

// TimestampLayout is the canonical textual form of timestamps in the unified
// table. Composite keys are derived from it with spaces and colons removed.
const TimestampLayout = "2006-01-02 15:04:05"

// UnifiedRecord is one row of the unified table consumed by the dashboard.
type UnifiedRecord struct {
	ID               string    `json:"id" csv:"id" parquet:"id"`
	SessionID        string    `json:"session_id" csv:"session_id" parquet:"session_id"`
	CompositeKey     string    `json:"composite_key" csv:"composite_key" parquet:"composite_key"`
	StdCountry       string    `json:"std_country" csv:"std_country" parquet:"std_country"`
	CountryName      string    `json:"country_name" csv:"country_name" parquet:"country_name"`
	IsMobile         string    `json:"is_mobile" csv:"is_mobile" parquet:"is_mobile"`
	UIElement        string    `json:"ui_element" csv:"ui_element" parquet:"ui_element"`
	Timestamp        time.Time `json:"timestamp" csv:"timestamp" parquet:"timestamp"`
	CreatedAt        time.Time `json:"created_at" csv:"created_at" parquet:"created_at"`
	PageName         string    `json:"page_name" csv:"page_name" parquet:"page_name"`
	CountryResidency string    `json:"country_residency" csv:"country_residency" parquet:"country_residency"`
	ImportantScore   int       `json:"important_score" csv:"important_score" parquet:"important_score"`
	Importance       string    `json:"importance" csv:"importance" parquet:"importance"`
}

// ImportanceLabels are the four ordered buckets of the importance score.
var ImportanceLabels = []string{"Low", "Medium", "High", "Very High"}

// BucketImportance bins a 0-100 score into one of the four labels. The lowest
// bin includes its lower bound; every other bin is half-open (lo, hi]. Scores
// outside 0-100 have no bucket and yield the empty string.
func BucketImportance(score int) string {
	switch {
	case score < 0:
		return ""
	case score <= 25:
		return "Low"
	case score <= 50:
		return "Medium"
	case score <= 75:
		return "High"
	case score <= 100:
		return "Very High"
	default:
		return ""
	}
}
