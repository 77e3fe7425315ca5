package domain

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Severity
	}{
		{"minor", "Minor", SeverityMinor},
		{"moderate", "Moderate", SeverityModerate},
		{"severe", "Severe", SeveritySevere},
		{"critical", "Critical", SeverityCritical},
		{"empty defaults to moderate", "", SeverityModerate},
		{"unknown defaults to moderate", "Apocalyptic", SeverityModerate},
		{"case sensitive", "minor", SeverityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSeverity(tt.input); got != tt.expected {
				t.Errorf("ParseSeverity(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRequestStatus_AdminSettable(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		settable bool
	}{
		{StatusPending, true},
		{StatusDispatched, true},
		{StatusCompleted, true},
		{StatusConfirmed, false},
		{StatusResolved, false},
		{RequestStatus("Bogus"), false},
		{RequestStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.AdminSettable(); got != tt.settable {
				t.Errorf("%q.AdminSettable() = %v, want %v", tt.status, got, tt.settable)
			}
		})
	}
}
