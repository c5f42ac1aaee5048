package etl

import (
	"strings"

	"github.com/pariz/gountries"
)

// CountryStandardizer maps raw country strings (ISO codes or free-form
// names) to the canonical common short name. Unmapped values become the
// empty string rather than an error.
type CountryStandardizer struct {
	query *gountries.Query
}

// NewCountryStandardizer builds a standardizer over the embedded country
// dataset.
func NewCountryStandardizer() *CountryStandardizer {
	return &CountryStandardizer{query: gountries.New()}
}

// Standardize returns the canonical short name for a raw country value, or
// the empty string when the value cannot be resolved.
func (s *CountryStandardizer) Standardize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" || strings.EqualFold(name, missingCountry) {
		return ""
	}

	if len(name) == 2 || len(name) == 3 {
		if c, err := s.query.FindCountryByAlpha(name); err == nil {
			return c.Name.Common
		}
	}
	if c, err := s.query.FindCountryByName(name); err == nil {
		return c.Name.Common
	}
	return ""
}

// Centroid returns the geographic center of a country by its common name,
// for placing map bubbles. ok is false for unknown countries.
func (s *CountryStandardizer) Centroid(name string) (lat, lng float64, ok bool) {
	c, err := s.query.FindCountryByName(name)
	if err != nil {
		return 0, 0, false
	}
	return c.Coordinates.Latitude, c.Coordinates.Longitude, true
}
