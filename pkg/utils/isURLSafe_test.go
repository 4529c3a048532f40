package utils

import "testing"

func TestIsURLSafe(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"empty string", "", false},
		{"alphanumeric", "test123", true},
		{"hyphens and underscores", "mentoons-adda_01", true},
		{"slash", "h/m", false},
		{"query character", "?test", false},
		{"inner space", "t est", false},
		{"dot", "z.z", false},
		{"whitespace only", "\t ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsURLSafe(tt.value); got != tt.expected {
				t.Errorf("IsURLSafe(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
