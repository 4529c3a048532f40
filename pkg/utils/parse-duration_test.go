package utils

import (
	"testing"
	"time"
)

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   time.Duration
		shouldFail bool
	}{
		{"empty string", "", 0, true},
		{"number without unit", "1", 0, true},
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "24h", 24 * time.Hour, false},
		{"combined units", "1h30m", time.Hour + 30*time.Minute, false},
		{"days not supported", "1d", 0, true},
		{"weeks not supported", "1w", 0, true},
		{"milliseconds", "1ms", time.Millisecond, false},
		{"microseconds", "1us", time.Microsecond, false},
		{"nanoseconds", "1ns", time.Nanosecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDurationString(tt.input)
			if tt.shouldFail {
				if err == nil {
					t.Errorf("expected error for input %q, but got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error for input %q, but got %s", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("expected %s for input %q, but got %s", tt.expected, tt.input, result)
			}
		})
	}
}
