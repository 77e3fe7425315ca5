package services

import (
	"strings"

	"github.com/you/dmhub/domain"
)

// knownCities are matched before falling back to token extraction. First
// match wins, so ordering is part of the behavior.
var knownCities = []string{
	"hyderabad",
	"chennai",
	"mumbai",
	"delhi",
	"bangalore",
	"kolkata",
	"pune",
	"jaipur",
}

// CityListMatcher implements domain.LocationMatcher by naive substring
// matching against a fixed city list, falling back to the first
// space/comma-delimited token. No geocoding, no distance.
type CityListMatcher struct {
	cities []string
}

// NewCityListMatcher creates the default location matcher.
func NewCityListMatcher() domain.LocationMatcher {
	return &CityListMatcher{cities: knownCities}
}

// SearchKey implements domain.LocationMatcher. It returns "" when no key
// can be derived, which callers treat as "do not match anyone".
func (m *CityListMatcher) SearchKey(req *domain.HelpRequest) string {
	raw := req.ManualAddress
	if raw == "" {
		raw = req.Description
	}
	raw = strings.ToLower(raw)

	for _, city := range m.cities {
		if strings.Contains(raw, city) {
			return city
		}
	}

	first := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(first) == 0 {
		return ""
	}
	return strings.TrimSpace(first[0])
}
