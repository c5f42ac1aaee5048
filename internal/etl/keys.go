package etl

import (
	"strconv"
	"strings"
	"time"

	"rfpulse/pkg/contracts/domain"
)

// Accepted textual timestamp layouts in the conversions export.
var timeLayouts = []string{
	domain.TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

var keyStampReplacer = strings.NewReplacer(" ", "", ":", "")

// normalizeUnixTimestamp converts a UNIX-seconds value to the canonical
// timestamp text, or "" when the value is not a number.
func normalizeUnixTimestamp(raw string) string {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return ""
	}
	return time.Unix(secs, 0).UTC().Format(domain.TimestampLayout)
}

// normalizeTextTimestamp converts a textual timestamp to the canonical
// layout, or "" when no layout matches.
func normalizeTextTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(domain.TimestampLayout)
		}
	}
	return ""
}

// CompositeKey joins a standardized country with a canonical timestamp
// stripped of spaces and colons. Either part missing means no valid key can
// be built and the row will be dropped before the join.
func CompositeKey(country, canonicalTS string) string {
	if country == "" || canonicalTS == "" {
		return ""
	}
	return country + "_" + keyStampReplacer.Replace(canonicalTS)
}
