package utils

import (
	"fmt"
	"time"
)

// ParseDurationString parses a duration config value (e.g. "5m", "24h") with
// a friendlier error than time.ParseDuration alone.
func ParseDurationString(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid time duration %q: %w", value, err)
	}
	return d, nil
}
