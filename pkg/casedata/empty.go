package casedata

import (
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

const threeSlotLen = 3

// EmptyDetails returns the template a create session starts from. All keyed
// maps are pre-seeded with their fixed rows and the three-slot lists with
// empty strings, so editors and renderers never have to special-case missing
// rows.
func EmptyDetails() types.Details {
	behaviours := make(map[string]types.BehaviourRow, len(types.BehaviourKeys))
	for _, key := range types.BehaviourKeys {
		behaviours[key] = types.BehaviourRow{}
	}

	habits := make(map[string]types.HabitRow, len(types.HabitKeys))
	for _, key := range types.HabitKeys {
		habits[key] = types.HabitRow{}
	}

	return types.Details{
		Demographic: types.DemographicDetails{
			Child: types.ChildDetails{
				Languages: []string{},
				Siblings:  []string{},
			},
		},
		BehaviouralEmotional:  behaviours,
		OtherAddictionPattern: habits,
		ScreenAndDigitalAddiction: types.ScreenAndDigitalAddiction{
			ParentPerspective: types.ParentScreenPerspective{
				UsageTypes:     []string{},
				ImpactObserved: []string{},
			},
		},
		ChildsSelfPerception: types.ChildsSelfPerception{
			LikesThemselves: emptySlots(),
			WantToImprove:   emptySlots(),
		},
		GoalsAndExpectations: types.GoalsAndExpectations{
			ParentsGoals: emptySlots(),
			ChildsGoals:  emptySlots(),
		},
	}
}

func emptySlots() []string {
	return make([]string, threeSlotLen)
}

// NormalizeThreeSlots pads or truncates the three-slot lists of a loaded
// record to exactly three entries. Stored records carry no length guarantee,
// shorter arrays are padded with empty strings, longer ones are cut.
func NormalizeThreeSlots(details types.Details) types.Details {
	details.ChildsSelfPerception.LikesThemselves = normalizeSlots(details.ChildsSelfPerception.LikesThemselves)
	details.ChildsSelfPerception.WantToImprove = normalizeSlots(details.ChildsSelfPerception.WantToImprove)
	details.GoalsAndExpectations.ParentsGoals = normalizeSlots(details.GoalsAndExpectations.ParentsGoals)
	details.GoalsAndExpectations.ChildsGoals = normalizeSlots(details.GoalsAndExpectations.ChildsGoals)
	return details
}

func normalizeSlots(slots []string) []string {
	normalized := make([]string, threeSlotLen)
	copy(normalized, slots)
	return normalized
}
