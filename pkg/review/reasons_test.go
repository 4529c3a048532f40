package review

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestDecodeReasons(t *testing.T) {
	t.Run("with fixed reasons only", func(t *testing.T) {
		record := types.ReasonSelectionRecord{
			Reasons: []string{"Consistent session schedule", "Good rapport with the mentor"},
		}
		reasons := DecodeReasons(record, types.ReasonOthersProvider)
		if len(reasons) != 2 {
			t.Fatalf("unexpected reasons: %v", reasons)
		}
		for _, reason := range reasons {
			if reason.Kind != ReasonFixed {
				t.Errorf("unexpected kind: %v", reason)
			}
		}
	})

	t.Run("sentinel becomes the free-text reason", func(t *testing.T) {
		record := types.ReasonSelectionRecord{
			Reasons:     []string{"Support from family", types.ReasonOthersChild},
			OtherReason: "new school routine",
		}
		reasons := DecodeReasons(record, types.ReasonOthersChild)
		if len(reasons) != 2 {
			t.Fatalf("unexpected reasons: %v", reasons)
		}
		if reasons[1].Kind != ReasonOther || reasons[1].Text != "new school routine" {
			t.Errorf("unexpected reason: %v", reasons[1])
		}
	})
}

func TestEncodeReasons(t *testing.T) {
	t.Run("round trip keeps the selection", func(t *testing.T) {
		reasons := []Reason{
			Fixed("Active participation in sessions"),
			Other("sibling moved out"),
		}
		record := EncodeReasons(reasons, types.ReasonOthersChild, "see session notes")

		if len(record.Reasons) != 2 {
			t.Fatalf("unexpected reasons: %v", record.Reasons)
		}
		if record.Reasons[1] != types.ReasonOthersChild {
			t.Errorf("unexpected sentinel position: %v", record.Reasons)
		}
		if record.OtherReason != "sibling moved out" {
			t.Errorf("unexpected other reason: %s", record.OtherReason)
		}
		if record.Remarks != "see session notes" {
			t.Errorf("unexpected remarks: %s", record.Remarks)
		}

		decoded := DecodeReasons(record, types.ReasonOthersChild)
		if len(decoded) != 2 || decoded[1].Text != "sibling moved out" {
			t.Errorf("round trip lost the free text: %v", decoded)
		}
	})

	t.Run("at most one other reason is encoded", func(t *testing.T) {
		record := EncodeReasons([]Reason{
			Other("first"),
			Other("second"),
		}, types.ReasonOthersProvider, "")

		if len(record.Reasons) != 1 {
			t.Errorf("unexpected reasons: %v", record.Reasons)
		}
		if record.OtherReason != "first" {
			t.Errorf("unexpected other reason: %s", record.OtherReason)
		}
	})
}

func TestHasOther(t *testing.T) {
	record := types.ReasonSelectionRecord{
		Reasons: []string{"Openness to feedback", types.ReasonOthersChild},
	}
	if !HasOther(record, types.ReasonOthersChild) {
		t.Error("should detect the sentinel")
	}
	if HasOther(record, types.ReasonOthersProvider) {
		t.Error("should not detect a foreign sentinel")
	}
}
