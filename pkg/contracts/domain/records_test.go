package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketImportance(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Low"},
		{1, "Low"},
		{25, "Low"}, // lowest bin includes both bounds
		{26, "Medium"},
		{50, "Medium"},
		{51, "High"},
		{75, "High"}, // upper bound inclusive
		{76, "Very High"},
		{100, "Very High"},
		{-1, ""},
		{101, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketImportance(tt.score), "score=%d", tt.score)
	}
}

func TestFilterStateMatches(t *testing.T) {
	ts := time.Date(2021, 3, 10, 12, 0, 0, 0, time.UTC)
	rec := UnifiedRecord{CountryName: "Germany", IsMobile: "Mobile", Timestamp: ts}

	tests := []struct {
		name   string
		filter FilterState
		want   bool
	}{
		{"empty filter passes", FilterState{}, true},
		{"country match", FilterState{Countries: []string{"Germany"}}, true},
		{"country mismatch", FilterState{Countries: []string{"India"}}, false},
		{"device all", FilterState{Device: DeviceAll}, true},
		{"device match", FilterState{Device: "Mobile"}, true},
		{"device mismatch", FilterState{Device: "Desktop"}, false},
		{"inside range", FilterState{Start: ts.AddDate(0, 0, -1), End: ts.AddDate(0, 0, 1)}, true},
		{"start bound inclusive", FilterState{Start: ts}, true},
		{"end bound inclusive", FilterState{End: ts}, true},
		{"before range", FilterState{Start: ts.Add(time.Second)}, false},
		{"after range", FilterState{End: ts.Add(-time.Second)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(rec))
		})
	}
}
