package casedata

import (
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// Lens is a typed accessor for one wizard section of a Details record. Every
// update flows through a lens, so a section can only ever replace its own
// top-level key; touching a sibling section is a type error rather than a
// convention.
type Lens[S any] struct {
	// Key is the top-level Details key the lens owns, matching the wire name.
	Key string
	Get func(types.Details) S
	Set func(types.Details, S) types.Details
}

// Update applies fn to the section selected by the lens and writes the result
// back. Details is passed and returned by value, sibling sections keep their
// previous values untouched.
func Update[S any](details types.Details, lens Lens[S], fn func(S) S) types.Details {
	return lens.Set(details, fn(lens.Get(details)))
}

var DemographicLens = Lens[types.DemographicDetails]{
	Key: "demographic",
	Get: func(d types.Details) types.DemographicDetails { return d.Demographic },
	Set: func(d types.Details, s types.DemographicDetails) types.Details {
		d.Demographic = s
		return d
	},
}

var DevelopmentalLens = Lens[types.DevelopmentalDetails]{
	Key: "developmental",
	Get: func(d types.Details) types.DevelopmentalDetails { return d.Developmental },
	Set: func(d types.Details, s types.DevelopmentalDetails) types.Details {
		d.Developmental = s
		return d
	},
}

var AcademicLens = Lens[types.AcademicDetails]{
	Key: "academic",
	Get: func(d types.Details) types.AcademicDetails { return d.Academic },
	Set: func(d types.Details, s types.AcademicDetails) types.Details {
		d.Academic = s
		return d
	},
}

var FamilyEnvironmentalLens = Lens[types.FamilyEnvironmentalDetails]{
	Key: "familyEnvironmental",
	Get: func(d types.Details) types.FamilyEnvironmentalDetails { return d.FamilyEnvironmental },
	Set: func(d types.Details, s types.FamilyEnvironmentalDetails) types.Details {
		d.FamilyEnvironmental = s
		return d
	},
}

var BehaviouralLens = Lens[map[string]types.BehaviourRow]{
	Key: "behaviouralEmotional",
	Get: func(d types.Details) map[string]types.BehaviourRow { return d.BehaviouralEmotional },
	Set: func(d types.Details, s map[string]types.BehaviourRow) types.Details {
		d.BehaviouralEmotional = s
		return d
	},
}

var ScreenAddictionLens = Lens[types.ScreenAndDigitalAddiction]{
	Key: "ScreenAndDigitalAddication",
	Get: func(d types.Details) types.ScreenAndDigitalAddiction { return d.ScreenAndDigitalAddiction },
	Set: func(d types.Details, s types.ScreenAndDigitalAddiction) types.Details {
		d.ScreenAndDigitalAddiction = s
		return d
	},
}

var OtherAddictionLens = Lens[map[string]types.HabitRow]{
	Key: "otherAddictionPattern",
	Get: func(d types.Details) map[string]types.HabitRow { return d.OtherAddictionPattern },
	Set: func(d types.Details, s map[string]types.HabitRow) types.Details {
		d.OtherAddictionPattern = s
		return d
	},
}

var SelfPerceptionLens = Lens[types.ChildsSelfPerception]{
	Key: "childsSelfPerception",
	Get: func(d types.Details) types.ChildsSelfPerception { return d.ChildsSelfPerception },
	Set: func(d types.Details, s types.ChildsSelfPerception) types.Details {
		d.ChildsSelfPerception = s
		return d
	},
}

var GoalsLens = Lens[types.GoalsAndExpectations]{
	Key: "goalsAndExpectations",
	Get: func(d types.Details) types.GoalsAndExpectations { return d.GoalsAndExpectations },
	Set: func(d types.Details, s types.GoalsAndExpectations) types.Details {
		d.GoalsAndExpectations = s
		return d
	},
}

var TherapistObservationLens = Lens[types.TherapistInitialObservation]{
	Key: "therapistInitialObservation",
	Get: func(d types.Details) types.TherapistInitialObservation { return d.TherapistInitialObservation },
	Set: func(d types.Details, s types.TherapistInitialObservation) types.Details {
		d.TherapistInitialObservation = s
		return d
	},
}
