package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherExactMatch(t *testing.T) {
	m := NewMatcher([]string{"newsletter signup", "checkout completed"}, CategoryThreshold)

	match, ok := m.Match("newsletter signup")
	assert.True(t, ok)
	assert.Equal(t, "newsletter signup", match)
}

func TestMatcherCloseMatch(t *testing.T) {
	m := NewMatcher([]string{"newsletter signup", "checkout completed"}, CategoryThreshold)

	match, ok := m.Match("newsletter signup!")
	assert.True(t, ok)
	assert.Equal(t, "newsletter signup", match)
}

func TestMatcherBelowThreshold(t *testing.T) {
	m := NewMatcher([]string{"newsletter signup"}, CategoryThreshold)

	match, ok := m.Match("qqqq")
	assert.False(t, ok)
	assert.Empty(t, match)
}

func TestMatcherThresholdIsStrict(t *testing.T) {
	// An identical string scores exactly 100; with the threshold at 100 the
	// strict greater-than rule must reject it.
	m := NewMatcher([]string{"newsletter signup"}, 100)

	match, ok := m.Match("newsletter signup")
	assert.False(t, ok)
	assert.Empty(t, match)

	// One notch below the maximum accepts it.
	m = NewMatcher([]string{"newsletter signup"}, 99)
	match, ok = m.Match("newsletter signup")
	assert.True(t, ok)
	assert.Equal(t, "newsletter signup", match)
}

func TestMatcherEmptyQuery(t *testing.T) {
	m := NewMatcher([]string{"newsletter signup"}, CategoryThreshold)

	_, ok := m.Match("")
	assert.False(t, ok)
	assert.Empty(t, m.MatchOrEmpty(""))
}

func TestMatcherIgnoresEmptyVocabulary(t *testing.T) {
	m := NewMatcher([]string{"", "newsletter signup", ""}, CategoryThreshold)

	match, ok := m.Match("newsletter signup")
	assert.True(t, ok)
	assert.Equal(t, "newsletter signup", match)
}
