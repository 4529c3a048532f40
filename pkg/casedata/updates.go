package casedata

import (
	"strings"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// SetArraySlot returns a copy of slots with index idx replaced by value. All
// other indices and the length stay unchanged; out-of-range indices leave the
// copy untouched.
func SetArraySlot(slots []string, idx int, value string) []string {
	updated := make([]string, len(slots))
	copy(updated, slots)
	if idx >= 0 && idx < len(updated) {
		updated[idx] = value
	}
	return updated
}

// SetBehaviourRow replaces one behaviour row. Unknown keys are ignored so a
// malformed request cannot grow the fixed row set.
func SetBehaviourRow(details types.Details, key string, row types.BehaviourRow) types.Details {
	if _, ok := types.BehaviourLabels[key]; !ok {
		return details
	}
	return Update(details, BehaviouralLens, func(rows map[string]types.BehaviourRow) map[string]types.BehaviourRow {
		updated := make(map[string]types.BehaviourRow, len(rows))
		for k, v := range rows {
			updated[k] = v
		}
		updated[key] = row
		return updated
	})
}

// SetHabitRow replaces one habit row. Unknown keys are ignored.
func SetHabitRow(details types.Details, key string, row types.HabitRow) types.Details {
	if _, ok := types.HabitLabels[key]; !ok {
		return details
	}
	return Update(details, OtherAddictionLens, func(rows map[string]types.HabitRow) map[string]types.HabitRow {
		updated := make(map[string]types.HabitRow, len(rows))
		for k, v := range rows {
			updated[k] = v
		}
		updated[key] = row
		return updated
	})
}

// MergeOtherImpacts rebuilds the impact-observed list from the currently
// selected options and the free-text extension that backs the "Others"
// choice. Fixed options keep their relative order and always come before the
// parsed free-text values, the Others sentinel itself is replaced by the
// parsed values, and values already present are not duplicated.
func MergeOtherImpacts(selected []string, freeText string) []string {
	merged := make([]string, 0, len(selected))
	seen := make(map[string]struct{})

	appendValue := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		merged = append(merged, value)
	}

	for _, value := range selected {
		if value == types.ImpactOthersSentinel {
			continue
		}
		if isFixedImpact(value) {
			appendValue(value)
		}
	}

	for _, part := range strings.Split(freeText, ",") {
		part = strings.TrimSpace(part)
		if part == types.ImpactOthersSentinel {
			continue
		}
		appendValue(part)
	}

	return merged
}

func isFixedImpact(value string) bool {
	for _, opt := range types.ImpactObservedOptions {
		if opt == value {
			return true
		}
	}
	return false
}
