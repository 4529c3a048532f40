package review

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestFlowFor(t *testing.T) {
	t.Run("without a persisted review", func(t *testing.T) {
		flow := FlowFor(types.Details{})
		if flow.State() != StateNotSubmitted {
			t.Errorf("unexpected state: %d", flow.State())
		}
	})

	t.Run("with a persisted review", func(t *testing.T) {
		flow := FlowFor(types.Details{ReviewMechanism: &types.ReviewMechanism{}})
		if flow.State() != StateViewing {
			t.Errorf("unexpected state: %d", flow.State())
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Run("first submission stamps the review", func(t *testing.T) {
		flow := FlowFor(types.Details{})
		review, err := flow.Submit(types.ReviewMechanism{StepsTaken: "weekly sessions"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.SubmittedAt == 0 {
			t.Error("submission timestamp not set")
		}
		if flow.State() != StateViewing {
			t.Errorf("unexpected state: %d", flow.State())
		}
	})

	t.Run("second submission is rejected", func(t *testing.T) {
		flow := FlowFor(types.Details{ReviewMechanism: &types.ReviewMechanism{}})
		_, err := flow.Submit(types.ReviewMechanism{})
		if err != ErrAlreadySubmitted {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestEditCycle(t *testing.T) {
	t.Run("edit preserves the submission timestamp", func(t *testing.T) {
		existing := types.ReviewMechanism{StepsTaken: "old", SubmittedAt: 12345}
		flow := FlowFor(types.Details{ReviewMechanism: &existing})

		if err := flow.BeginEdit(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updated, err := flow.Update(existing, types.ReviewMechanism{StepsTaken: "new"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.StepsTaken != "new" {
			t.Errorf("unexpected steps: %s", updated.StepsTaken)
		}
		if updated.SubmittedAt != 12345 {
			t.Errorf("unexpected timestamp: %d", updated.SubmittedAt)
		}
		if flow.State() != StateViewing {
			t.Errorf("unexpected state: %d", flow.State())
		}
	})

	t.Run("edit needs a submitted review", func(t *testing.T) {
		flow := FlowFor(types.Details{})
		if err := flow.BeginEdit(); err != ErrNotSubmitted {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := flow.Update(types.ReviewMechanism{}, types.ReviewMechanism{}); err != ErrNotSubmitted {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("cancel returns to viewing", func(t *testing.T) {
		flow := FlowFor(types.Details{ReviewMechanism: &types.ReviewMechanism{}})
		if err := flow.BeginEdit(); err != nil {
			t.Fatal(err)
		}
		flow.CancelEdit()
		if flow.State() != StateViewing {
			t.Errorf("unexpected state: %d", flow.State())
		}
	})
}
