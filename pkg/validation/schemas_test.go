package validation

import (
	"strings"
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func validDetails() types.Details {
	details := casedata.EmptyDetails()

	details.Demographic.Child = types.ChildDetails{
		Name:           "Test Child",
		Age:            "10",
		DateOfBirth:    "2016-02-14",
		Gender:         "Female",
		Languages:      []string{"English"},
		Address:        "12 Lake View Road",
		Class:          "5",
		School:         "Green Valley School",
		EconomicStatus: "Lower",
	}
	details.Demographic.Guardians.Father = types.Guardian{Name: "Test Father"}
	details.Demographic.Guardians.Mother = types.Guardian{Name: "Test Mother"}
	details.Demographic.Guardians.PrimaryCareGiver = "Mother"
	details.Demographic.Guardians.FamilyStructure = "Nuclear Family"

	details.Developmental.Speech = "On-time"
	details.Developmental.MotorSkills = "On-time"
	details.Developmental.SocialInteraction = "Delayed"

	details.Academic.Performance = "Average"

	details.FamilyEnvironmental.ParentalRelationship = "Harmonious"
	details.FamilyEnvironmental.HomeEnvironment = "Calm"
	details.FamilyEnvironmental.DisciplineStyle = "Authoritative"

	for _, key := range types.BehaviourKeys {
		details = casedata.SetBehaviourRow(details, key, types.BehaviourRow{Value: "Never"})
	}

	details.ScreenAndDigitalAddiction.ParentPerspective = types.ParentScreenPerspective{
		DailyScreenTime: "1-2 hours",
		UsageTypes:      []string{"Games"},
		OwnsDevice:      "No",
		SupervisedUse:   "Yes",
		ImpactObserved:  []string{"Sleep disturbance"},
	}
	details.ScreenAndDigitalAddiction.ChildPerspective.FeelingWithoutDevice = "Bored"

	details.ChildsSelfPerception.LikesThemselves = []string{"drawing", "", ""}
	details.ChildsSelfPerception.WantToImprove = []string{"focus", "", ""}
	details.GoalsAndExpectations.ParentsGoals = []string{"better sleep", "", ""}
	details.GoalsAndExpectations.ChildsGoals = []string{"more friends", "", ""}

	details.TherapistInitialObservation.Cooperation = "Cooperative"
	return details
}

func TestValidateAll(t *testing.T) {
	t.Run("with a fully valid record", func(t *testing.T) {
		errs := ValidateAll(validDetails())
		if len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("empty submit reports every required section", func(t *testing.T) {
		errs := ValidateAll(casedata.EmptyDetails())
		if len(errs) == 0 {
			t.Fatal("should have errors")
		}
		sections := map[string]bool{}
		for _, err := range errs {
			root := err.Path
			if idx := strings.Index(root, "."); idx >= 0 {
				root = root[:idx]
			}
			sections[root] = true
		}
		for _, want := range []string{
			"demographic",
			"developmental",
			"academic",
			"familyEnvironmental",
			"behaviouralEmotional",
			"ScreenAndDigitalAddication",
			"childsSelfPerception",
			"goalsAndExpectations",
			"therapistInitialObservation",
		} {
			if !sections[want] {
				t.Errorf("no error for section %s", want)
			}
		}
	})

	t.Run("errors are ordered by wizard step", func(t *testing.T) {
		details := validDetails()
		details.TherapistInitialObservation.Cooperation = ""
		details.Demographic.Child.Name = ""

		errs := ValidateAll(details)
		if len(errs) != 2 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if !strings.HasPrefix(errs[0].Path, "demographic.") {
			t.Errorf("unexpected first error: %s", errs[0].Path)
		}
		if !strings.HasPrefix(errs[1].Path, "therapistInitialObservation.") {
			t.Errorf("unexpected second error: %s", errs[1].Path)
		}
	})

	t.Run("with a non-numeric age", func(t *testing.T) {
		details := validDetails()
		details.Demographic.Child.Age = "ten"
		errs := ValidateAll(details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "demographic.child.age" || errs[0].Message != "must be a number" {
			t.Errorf("unexpected error: %v", errs[0])
		}
	})

	t.Run("with a value outside the option table", func(t *testing.T) {
		details := validDetails()
		details.FamilyEnvironmental.HomeEnvironment = "Chaotic"
		errs := ValidateAll(details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "familyEnvironmental.homeEnvironment" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
		if !strings.Contains(errs[0].Message, "Calm") {
			t.Errorf("message should list the options: %s", errs[0].Message)
		}
	})

	t.Run("with a missing behaviour row", func(t *testing.T) {
		details := validDetails()
		delete(details.BehaviouralEmotional, "defiance")
		errs := ValidateAll(details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "behaviouralEmotional.defiance" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})

	t.Run("habit marked present needs a frequency", func(t *testing.T) {
		details := validDetails()
		details = casedata.SetHabitRow(details, "junkFood", types.HabitRow{Present: true})
		errs := ValidateAll(details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "otherAddictionPattern.junkFood.frequency" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}

		details = casedata.SetHabitRow(details, "junkFood", types.HabitRow{Present: true, Frequency: "Moderate"})
		if errs := ValidateAll(details); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("three-slot lists need at least one entry", func(t *testing.T) {
		details := validDetails()
		details.GoalsAndExpectations.ChildsGoals = []string{"", "  ", ""}
		errs := ValidateAll(details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "goalsAndExpectations.childsGoals" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})
}

func TestValidateSection(t *testing.T) {
	t.Run("keeps only the owning section's failures", func(t *testing.T) {
		details := validDetails()
		details.Demographic.Child.Name = ""
		details.Academic.Performance = ""

		errs := ValidateSection("academic", details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "academic.performance" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})

	t.Run("with a failing behaviour row", func(t *testing.T) {
		details := validDetails()
		details.Demographic.Child.Name = ""
		details = casedata.SetBehaviourRow(details, "anxiety", types.BehaviourRow{Value: "NotAFrequency"})

		errs := ValidateSection("behaviouralEmotional", details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "behaviouralEmotional[anxiety].value" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})

	t.Run("with a failing habit row", func(t *testing.T) {
		details := validDetails()
		details = casedata.SetHabitRow(details, "junkFood", types.HabitRow{Present: true, Frequency: "Hourly"})

		errs := ValidateSection("otherAddictionPattern", details)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "otherAddictionPattern[junkFood].frequency" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})
}

func validReview() types.ReviewMechanism {
	indicators := make(map[string]types.ProgressIndicatorRow, len(types.ProgressAreaKeys))
	for _, area := range types.ProgressAreaKeys {
		indicators[area] = types.ProgressIndicatorRow{Change: "No Change"}
	}
	return types.ReviewMechanism{
		StepsTaken:                   "Weekly sessions since March",
		ProgressEffectivenessRating:  "Partially Effective",
		ObservableProgressIndicators: indicators,
		WhyInterventionsWorking: types.WhyInterventionsWorking{
			RelatedToMentoonsProvider: types.ReasonSelectionRecord{
				Reasons: []string{"Consistent session schedule"},
			},
			RelatedToChild: types.ReasonSelectionRecord{
				Reasons: []string{"Support from family"},
			},
		},
		EvaluationSummary:     "Steady progress",
		ActionPlanOrNextSteps: []string{"Continue current plan"},
		Signature:             "/v1/files/abc",
		Date:                  "2026-08-29",
	}
}

func TestValidateReview(t *testing.T) {
	t.Run("with a fully valid review", func(t *testing.T) {
		if errs := ValidateReview(validReview()); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("with a missing progress area", func(t *testing.T) {
		review := validReview()
		delete(review.ObservableProgressIndicators, "screenTimeBalance")
		errs := ValidateReview(review)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "observableProgressIndicators.screenTimeBalance" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})

	t.Run("other sentinel requires the free text", func(t *testing.T) {
		review := validReview()
		review.WhyInterventionsWorking.RelatedToChild.Reasons = []string{types.ReasonOthersChild}
		errs := ValidateReview(review)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "whyInventionsWorking.relatedToChild.otherReason" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}

		review.WhyInterventionsWorking.RelatedToChild.OtherReason = "new school routine"
		if errs := ValidateReview(review); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("empty reason selections are rejected", func(t *testing.T) {
		review := validReview()
		review.WhyInterventionsWorking.RelatedToMentoonsProvider.Reasons = nil
		errs := ValidateReview(review)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "whyInventionsWorking.relatedToMentoonsProvider.reasons" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})

	t.Run("with an unknown action plan item", func(t *testing.T) {
		review := validReview()
		review.ActionPlanOrNextSteps = append(review.ActionPlanOrNextSteps, "Not a real step")
		errs := ValidateReview(review)
		if len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Path != "actionPlanOrNextSteps" {
			t.Errorf("unexpected path: %s", errs[0].Path)
		}
	})
}

func TestAggregateMessage(t *testing.T) {
	errs := []FieldError{
		{Path: "demographic.child.name", Message: "is required"},
		{Path: "academic.performance", Message: "is required"},
	}
	msg := AggregateMessage(errs)
	want := "demographic.child.name: is required\nacademic.performance: is required"
	if msg != want {
		t.Errorf("unexpected message: %q", msg)
	}
}
