package utils

import "slices"

// ContainsString reports whether the slice carries the search term.
func ContainsString(slice []string, searchTerm string) bool {
	return slices.Contains(slice, searchTerm)
}
