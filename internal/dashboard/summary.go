package dashboard

import (
	"fmt"

	"rfpulse/pkg/contracts/domain"
)

// Summary holds the three scorecards. They are computed once from the
// unfiltered table and do not react to filter changes.
type Summary struct {
	TotalConversions int     `json:"total_conversions"`
	TotalUsers       int     `json:"total_users"`
	ConversionRate   float64 `json:"conversion_rate"`
	RateDisplay      string  `json:"rate_display"`
}

// Summarize computes the scorecards: distinct composite keys, distinct
// session ids, and their ratio as a percentage rendered to two decimals.
func Summarize(records []domain.UnifiedRecord) Summary {
	keys := make(map[string]struct{}, len(records))
	sessions := make(map[string]struct{}, len(records))
	for _, r := range records {
		keys[r.CompositeKey] = struct{}{}
		sessions[r.SessionID] = struct{}{}
	}

	s := Summary{
		TotalConversions: len(keys),
		TotalUsers:       len(sessions),
	}
	if s.TotalUsers > 0 {
		s.ConversionRate = float64(s.TotalConversions) / float64(s.TotalUsers) * 100
	}
	s.RateDisplay = fmt.Sprintf("%.2f%%", s.ConversionRate)
	return s
}
