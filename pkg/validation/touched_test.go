package validation

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata"
)

func TestFieldState(t *testing.T) {
	t.Run("inline errors need a touched field", func(t *testing.T) {
		state := NewFieldState()
		state.Recompute(casedata.EmptyDetails())

		if _, show := state.ShowError("demographic.child.name"); show {
			t.Error("untouched field should not surface an error")
		}

		state.Touch("demographic.child.name")
		msg, show := state.ShowError("demographic.child.name")
		if !show {
			t.Error("touched failing field should surface an error")
		}
		if msg != "is required" {
			t.Errorf("unexpected message: %s", msg)
		}
	})

	t.Run("recompute drops resolved errors", func(t *testing.T) {
		state := NewFieldState()
		details := casedata.EmptyDetails()
		state.Recompute(details)
		state.Touch("academic.performance")

		if _, show := state.ShowError("academic.performance"); !show {
			t.Error("should surface an error")
		}

		details.Academic.Performance = "Good"
		state.Recompute(details)
		if _, show := state.ShowError("academic.performance"); show {
			t.Error("resolved error should be dropped")
		}
	})

	t.Run("error count follows the record", func(t *testing.T) {
		state := NewFieldState()
		state.Recompute(casedata.EmptyDetails())
		if state.ErrorCount() == 0 {
			t.Error("empty record should have errors")
		}
	})
}
