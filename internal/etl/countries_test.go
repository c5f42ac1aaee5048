package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardize(t *testing.T) {
	std := NewCountryStandardizer()

	tests := []struct {
		raw  string
		want string
	}{
		{"US", "United States"},
		{"USA", "United States"},
		{"DE", "Germany"},
		{"Germany", "Germany"},
		{"united states", "United States"},
		{"none", ""},
		{"", ""},
		{"Atlantis", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, std.Standardize(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCentroid(t *testing.T) {
	std := NewCountryStandardizer()

	lat, lng, ok := std.Centroid("Germany")
	assert.True(t, ok)
	assert.InDelta(t, 51, lat, 2)
	assert.InDelta(t, 9, lng, 2)

	_, _, ok = std.Centroid("Atlantis")
	assert.False(t, ok)
}
