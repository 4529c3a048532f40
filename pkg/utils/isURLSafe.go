package utils

import "regexp"

var urlSafePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// IsURLSafe reports whether a value can be used as a path segment without
// escaping. Empty values are not URL safe.
func IsURLSafe(value string) bool {
	return value != "" && urlSafePattern.MatchString(value)
}
