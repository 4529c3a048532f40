package casedata

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestSetArraySlot(t *testing.T) {
	t.Run("with a valid index", func(t *testing.T) {
		slots := []string{"a", "b", "c"}
		updated := SetArraySlot(slots, 1, "x")
		if updated[0] != "a" || updated[1] != "x" || updated[2] != "c" {
			t.Errorf("unexpected slots: %v", updated)
		}
		if slots[1] != "b" {
			t.Errorf("input was mutated: %v", slots)
		}
	})

	t.Run("with out-of-range indices", func(t *testing.T) {
		slots := []string{"a", "b", "c"}
		updated := SetArraySlot(slots, 3, "x")
		if len(updated) != 3 || updated[2] != "c" {
			t.Errorf("unexpected slots: %v", updated)
		}
		updated = SetArraySlot(slots, -1, "x")
		if updated[0] != "a" {
			t.Errorf("unexpected slots: %v", updated)
		}
	})
}

func TestSetBehaviourRow(t *testing.T) {
	t.Run("with a known key", func(t *testing.T) {
		details := EmptyDetails()
		updated := SetBehaviourRow(details, "anxiety", types.BehaviourRow{Value: "Often", Note: "before school"})

		row := updated.BehaviouralEmotional["anxiety"]
		if row.Value != "Often" || row.Note != "before school" {
			t.Errorf("unexpected row: %v", row)
		}
		if len(updated.BehaviouralEmotional) != len(types.BehaviourKeys) {
			t.Errorf("row set grew to %d", len(updated.BehaviouralEmotional))
		}
	})

	t.Run("with an unknown key", func(t *testing.T) {
		details := EmptyDetails()
		updated := SetBehaviourRow(details, "notARow", types.BehaviourRow{Value: "Often"})

		if len(updated.BehaviouralEmotional) != len(types.BehaviourKeys) {
			t.Errorf("unknown key was added: %v", updated.BehaviouralEmotional)
		}
	})

	t.Run("other rows keep their values", func(t *testing.T) {
		details := EmptyDetails()
		details = SetBehaviourRow(details, "tantrums", types.BehaviourRow{Value: "Always"})
		details = SetBehaviourRow(details, "anxiety", types.BehaviourRow{Value: "Never"})

		if details.BehaviouralEmotional["tantrums"].Value != "Always" {
			t.Errorf("unexpected row: %v", details.BehaviouralEmotional["tantrums"])
		}
	})
}

func TestSetHabitRow(t *testing.T) {
	t.Run("with a known key", func(t *testing.T) {
		details := EmptyDetails()
		updated := SetHabitRow(details, "nailBiting", types.HabitRow{Present: true, Frequency: "High"})

		row := updated.OtherAddictionPattern["nailBiting"]
		if !row.Present || row.Frequency != "High" {
			t.Errorf("unexpected row: %v", row)
		}
	})

	t.Run("with an unknown key", func(t *testing.T) {
		details := EmptyDetails()
		updated := SetHabitRow(details, "notAHabit", types.HabitRow{Present: true})
		if len(updated.OtherAddictionPattern) != len(types.HabitKeys) {
			t.Errorf("unknown key was added: %v", updated.OtherAddictionPattern)
		}
	})
}

func TestMergeOtherImpacts(t *testing.T) {
	t.Run("fixed options come before free-text values", func(t *testing.T) {
		merged := MergeOtherImpacts(
			[]string{"Sleep disturbance", types.ImpactOthersSentinel, "Reduced outdoor play"},
			"Nightmares, Bedwetting",
		)
		want := []string{"Sleep disturbance", "Reduced outdoor play", "Nightmares", "Bedwetting"}
		if len(merged) != len(want) {
			t.Fatalf("unexpected merge result: %v", merged)
		}
		for i := range want {
			if merged[i] != want[i] {
				t.Errorf("unexpected value at %d: %s", i, merged[i])
			}
		}
	})

	t.Run("sentinel is never persisted", func(t *testing.T) {
		merged := MergeOtherImpacts([]string{types.ImpactOthersSentinel}, "Others, Nightmares")
		for _, value := range merged {
			if value == types.ImpactOthersSentinel {
				t.Errorf("sentinel leaked into: %v", merged)
			}
		}
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		merged := MergeOtherImpacts(
			[]string{"Sleep disturbance", "Sleep disturbance"},
			"Sleep disturbance, Nightmares, Nightmares",
		)
		if len(merged) != 2 {
			t.Errorf("unexpected merge result: %v", merged)
		}
	})

	t.Run("with empty free text", func(t *testing.T) {
		merged := MergeOtherImpacts([]string{"Irritability when device is removed"}, "   ")
		if len(merged) != 1 || merged[0] != "Irritability when device is removed" {
			t.Errorf("unexpected merge result: %v", merged)
		}
	})

	t.Run("unknown selected values are dropped", func(t *testing.T) {
		merged := MergeOtherImpacts([]string{"Not an option", "Sleep disturbance"}, "")
		if len(merged) != 1 || merged[0] != "Sleep disturbance" {
			t.Errorf("unexpected merge result: %v", merged)
		}
	})
}
