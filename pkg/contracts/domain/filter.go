package domain

import "time"

// DeviceAll disables device filtering.
const DeviceAll = "All"

// DefaultCountries is the country shortlist offered by the dashboard filter.
var DefaultCountries = []string{
	"United States", "United Kingdom", "Canada", "Netherlands",
	"Germany", "India", "China",
}

// FilterState is the dashboard's complete filter selection. Panels are pure
// functions of (table, FilterState); the state itself lives client-side and
// arrives with every panel request.
type FilterState struct {
	Countries []string  `json:"countries"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Device    string    `json:"device"`
}

// Matches reports whether a record passes the country, date-range, and device
// selections. An empty country set and the zero time bounds pass everything;
// date bounds are inclusive; the device filter is an exact match on the
// is_mobile flag with DeviceAll as passthrough.
func (f FilterState) Matches(r UnifiedRecord) bool {
	if len(f.Countries) > 0 {
		found := false
		for _, c := range f.Countries {
			if r.CountryName == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !f.Start.IsZero() && r.Timestamp.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && r.Timestamp.After(f.End) {
		return false
	}
	if f.Device != "" && f.Device != DeviceAll && r.IsMobile != f.Device {
		return false
	}
	return true
}
