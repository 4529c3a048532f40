package review

import (
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// Reason is a tagged variant for the "why interventions are working"
// multi-selects: either one of the fixed list entries or a free-text other
// reason. The persisted shape keeps the historical sentinel encoding
// (OTHERS_PROVIDER / OTHERS_CHILD inside the reasons array plus a separate
// otherReason field); the conversion below is the only place that knows about
// the sentinels.

type ReasonKind int

const (
	ReasonFixed ReasonKind = iota
	ReasonOther
)

type Reason struct {
	Kind ReasonKind
	Text string
}

func Fixed(text string) Reason {
	return Reason{Kind: ReasonFixed, Text: text}
}

func Other(text string) Reason {
	return Reason{Kind: ReasonOther, Text: text}
}

// DecodeReasons converts a persisted reason selection into tagged reasons.
// The sentinel entry becomes a single Other reason carrying the free text.
func DecodeReasons(record types.ReasonSelectionRecord, sentinel string) []Reason {
	reasons := make([]Reason, 0, len(record.Reasons))
	for _, value := range record.Reasons {
		if value == sentinel {
			reasons = append(reasons, Other(record.OtherReason))
			continue
		}
		reasons = append(reasons, Fixed(value))
	}
	return reasons
}

// EncodeReasons converts tagged reasons back into the persisted shape. At
// most one Other reason is encoded; its text goes into otherReason and the
// sentinel takes its position in the array.
func EncodeReasons(reasons []Reason, sentinel string, remarks string) types.ReasonSelectionRecord {
	record := types.ReasonSelectionRecord{
		Reasons: make([]string, 0, len(reasons)),
		Remarks: remarks,
	}
	for _, reason := range reasons {
		switch reason.Kind {
		case ReasonOther:
			if record.OtherReason != "" {
				continue
			}
			record.OtherReason = reason.Text
			record.Reasons = append(record.Reasons, sentinel)
		default:
			record.Reasons = append(record.Reasons, reason.Text)
		}
	}
	return record
}

// HasOther reports whether a selection carries a free-text reason, which
// gates the visibility of the inline other-reason input.
func HasOther(record types.ReasonSelectionRecord, sentinel string) bool {
	for _, value := range record.Reasons {
		if value == sentinel {
			return true
		}
	}
	return false
}
