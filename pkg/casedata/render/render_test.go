package render

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestNewBadgeField(t *testing.T) {
	t.Run("marks exactly the stored value", func(t *testing.T) {
		field := NewBadgeField("Gender", "gender", "Female")
		if len(field.Badges) != 3 {
			t.Fatalf("unexpected badge count: %d", len(field.Badges))
		}
		selected := 0
		for _, badge := range field.Badges {
			if badge.Selected {
				selected++
				if badge.Option != "Female" {
					t.Errorf("wrong badge selected: %s", badge.Option)
				}
			}
		}
		if selected != 1 {
			t.Errorf("unexpected selected count: %d", selected)
		}
	})

	t.Run("with an empty value", func(t *testing.T) {
		field := NewBadgeField("Gender", "gender", "")
		for _, badge := range field.Badges {
			if badge.Selected {
				t.Errorf("no badge should be selected: %s", badge.Option)
			}
		}
	})

	t.Run("with a value outside the options", func(t *testing.T) {
		field := NewBadgeField("Home Environment", "homeEnvironment", "Chaotic")
		for _, badge := range field.Badges {
			if badge.Selected {
				t.Errorf("no badge should be selected: %s", badge.Option)
			}
		}
	})
}

func TestNewTextField(t *testing.T) {
	if field := NewTextField("Name", "Test Child"); field.Value != "Test Child" {
		t.Errorf("unexpected value: %s", field.Value)
	}
	if field := NewTextField("Name", ""); field.Value != "-" {
		t.Errorf("empty value should render the placeholder: %s", field.Value)
	}
}

func TestRenderCaseRecord(t *testing.T) {
	t.Run("with a nil record", func(t *testing.T) {
		view := RenderCaseRecord(nil)
		if view.Loaded {
			t.Error("nil record should render as not loaded")
		}
	})

	t.Run("renders all ten sections", func(t *testing.T) {
		record := casedata.EmptyDetails()
		record.Demographic.Child.Name = "Test Child"
		view := RenderCaseRecord(&record)
		if !view.Loaded {
			t.Error("should render as loaded")
		}
		if len(view.Sections) != 10 {
			t.Errorf("unexpected section count: %d", len(view.Sections))
		}
	})

	t.Run("keyed sections carry a row per fixed key", func(t *testing.T) {
		record := casedata.EmptyDetails()
		view := RenderCaseRecord(&record)
		for _, section := range view.Sections {
			switch section.Title {
			case "Behavioural & Emotional":
				if len(section.Rows) != len(types.BehaviourKeys) {
					t.Errorf("unexpected row count: %d", len(section.Rows))
				}
			case "Other Addiction Patterns":
				if len(section.Rows) != len(types.HabitKeys) {
					t.Errorf("unexpected row count: %d", len(section.Rows))
				}
			}
		}
	})
}

func TestRenderReview(t *testing.T) {
	t.Run("with a nil review", func(t *testing.T) {
		section, ok := RenderReview(nil)
		if ok {
			t.Error("nil review should render the placeholder")
		}
		if section.Title != "Review Mechanism" {
			t.Errorf("unexpected title: %s", section.Title)
		}
	})

	t.Run("with a submitted review", func(t *testing.T) {
		review := types.ReviewMechanism{
			StepsTaken: "weekly sessions",
			ObservableProgressIndicators: map[string]types.ProgressIndicatorRow{
				"socialInteraction": {Change: "Positive Change"},
			},
		}
		section, ok := RenderReview(&review)
		if !ok {
			t.Error("should render the review")
		}
		if len(section.Rows) != len(types.ProgressAreaKeys) {
			t.Errorf("unexpected row count: %d", len(section.Rows))
		}
	})
}
