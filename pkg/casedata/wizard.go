package casedata

import (
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// Wizard step indices. Navigation is a plain integer clamped to this range,
// intermediate transitions are never validation-gated.
const (
	StepDemographic = 1 + iota
	StepDevelopmental
	StepAcademic
	StepFamilyEnvironmental
	StepBehavioural
	StepScreenAddiction
	StepOtherAddiction
	StepSelfPerception
	StepGoals
	StepTherapistObservation

	FirstStep = StepDemographic
	LastStep  = StepTherapistObservation
)

// WizardSession holds the record being captured for the duration of one
// wizard run. A create session starts from the empty template, an edit
// session from the persisted record; in both cases the session owns its copy
// and nothing is persisted until the final submit passes validation.
type WizardSession struct {
	Step    int
	Details types.Details
	// Editing records whether the session was opened on an existing record
	// (submit updates instead of creates).
	Editing bool
}

// NewCreateSession opens a wizard on the empty template.
func NewCreateSession() *WizardSession {
	return &WizardSession{
		Step:    FirstStep,
		Details: EmptyDetails(),
	}
}

// NewEditSession opens a wizard seeded from a persisted record. Three-slot
// lists are normalized on load, everything else is taken over as stored.
func NewEditSession(record types.Details) *WizardSession {
	return &WizardSession{
		Step:    FirstStep,
		Details: NormalizeThreeSlots(record),
		Editing: true,
	}
}

// Next advances the step index, clamped to the last step.
func (s *WizardSession) Next() {
	if s.Step < LastStep {
		s.Step++
	}
}

// Previous moves the step index back, clamped to the first step.
func (s *WizardSession) Previous() {
	if s.Step > FirstStep {
		s.Step--
	}
}

// JumpTo sets the step index directly, clamped to the valid range.
func (s *WizardSession) JumpTo(step int) {
	if step < FirstStep {
		step = FirstStep
	}
	if step > LastStep {
		step = LastStep
	}
	s.Step = step
}

// SectionKeyForStep returns the Details key a step owns.
func SectionKeyForStep(step int) string {
	switch step {
	case StepDemographic:
		return DemographicLens.Key
	case StepDevelopmental:
		return DevelopmentalLens.Key
	case StepAcademic:
		return AcademicLens.Key
	case StepFamilyEnvironmental:
		return FamilyEnvironmentalLens.Key
	case StepBehavioural:
		return BehaviouralLens.Key
	case StepScreenAddiction:
		return ScreenAddictionLens.Key
	case StepOtherAddiction:
		return OtherAddictionLens.Key
	case StepSelfPerception:
		return SelfPerceptionLens.Key
	case StepGoals:
		return GoalsLens.Key
	case StepTherapistObservation:
		return TherapistObservationLens.Key
	}
	return ""
}
