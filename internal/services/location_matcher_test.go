package services

import (
	"testing"

	"github.com/you/dmhub/domain"
)

func TestCityListMatcher_SearchKey(t *testing.T) {
	matcher := NewCityListMatcher()

	tests := []struct {
		name        string
		address     string
		description string
		expected    string
	}{
		{
			name:     "known city in address",
			address:  "Near XYZ School, Hyderabad",
			expected: "hyderabad",
		},
		{
			name:        "known city in description fallback",
			address:     "",
			description: "Flooding reported across Chennai suburbs",
			expected:    "chennai",
		},
		{
			name:     "first known city wins over later ones",
			address:  "between Hyderabad and Chennai",
			expected: "hyderabad",
		},
		{
			name:     "unknown city falls back to first token",
			address:  "Kukatpally, near the park",
			expected: "kukatpally",
		},
		{
			name:     "comma delimited first token",
			address:  "Warangal,Telangana",
			expected: "warangal",
		},
		{
			name:        "empty inputs yield empty key",
			address:     "",
			description: "",
			expected:    "",
		},
		{
			name:     "whitespace only yields empty key",
			address:  "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &domain.HelpRequest{
				ManualAddress: tt.address,
				Description:   tt.description,
			}
			if got := matcher.SearchKey(req); got != tt.expected {
				t.Errorf("SearchKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}
