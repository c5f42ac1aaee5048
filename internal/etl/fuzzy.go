package etl

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Similarity thresholds on the 0-100 weighted-ratio scale. A match must
// score strictly above the threshold to be accepted.
const (
	CategoryThreshold = 80
	CountryThreshold  = 85
)

// Matcher resolves free-text values against a fixed vocabulary using the
// weighted-ratio scorer.
type Matcher struct {
	vocabulary []string
	threshold  int
}

// NewMatcher builds a matcher over the vocabulary. Empty vocabulary entries
// are ignored.
func NewMatcher(vocabulary []string, threshold int) *Matcher {
	vocab := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		if v != "" {
			vocab = append(vocab, v)
		}
	}
	return &Matcher{vocabulary: vocab, threshold: threshold}
}

// Match returns the single highest-scoring vocabulary entry for query, and
// whether it cleared the threshold. Ties keep the earlier entry. A score
// exactly at the threshold is rejected.
func (m *Matcher) Match(query string) (string, bool) {
	if query == "" {
		return "", false
	}

	best := ""
	bestScore := -1
	for _, candidate := range m.vocabulary {
		score := fuzzy.WRatio(query, candidate)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore > m.threshold {
		return best, true
	}
	return "", false
}

// MatchOrEmpty is Match collapsed to the column representation of an
// absent value.
func (m *Matcher) MatchOrEmpty(query string) string {
	match, _ := m.Match(query)
	return match
}
