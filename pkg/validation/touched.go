package validation

import (
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// FieldState tracks which fields the user has interacted with and what the
// current validation failures are. An inline error is only surfaced for
// fields that are both touched and failing; the final submit ignores the
// touched map and reports everything.
type FieldState struct {
	touched map[string]bool
	errors  map[string]string
}

func NewFieldState() *FieldState {
	return &FieldState{
		touched: make(map[string]bool),
		errors:  make(map[string]string),
	}
}

// Touch marks a field path as visited.
func (s *FieldState) Touch(path string) {
	s.touched[path] = true
}

// IsTouched reports whether a field path has been visited.
func (s *FieldState) IsTouched(path string) bool {
	return s.touched[path]
}

// Recompute rebuilds the error map from the current record. Called after
// every value change and on blur; previously recorded errors that no longer
// apply are dropped.
func (s *FieldState) Recompute(details types.Details) {
	s.errors = make(map[string]string)
	for _, err := range ValidateAll(details) {
		if _, ok := s.errors[err.Path]; !ok {
			s.errors[err.Path] = err.Message
		}
	}
}

// ShowError returns the error message to surface inline for a field path:
// present only when the field is touched and currently failing.
func (s *FieldState) ShowError(path string) (string, bool) {
	if !s.touched[path] {
		return "", false
	}
	msg, ok := s.errors[path]
	return msg, ok
}

// ErrorCount returns the number of currently failing field paths.
func (s *FieldState) ErrorCount() int {
	return len(s.errors)
}
