package review

import (
	"errors"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// The review mechanism has exactly two screens: before the first submission
// only the form exists, afterwards the read-only view with a re-entrant edit
// toggle. The first submission is irreversible.

type FlowState int

const (
	StateNotSubmitted FlowState = iota
	StateViewing
	StateEditing
)

var (
	ErrAlreadySubmitted = errors.New("review already submitted")
	ErrNotSubmitted     = errors.New("review not submitted yet")
)

// Flow tracks where one case record's review stands.
type Flow struct {
	state FlowState
}

// FlowFor derives the flow state from the case record: a persisted review
// means the submitted side of the machine.
func FlowFor(details types.Details) *Flow {
	if details.ReviewMechanism != nil {
		return &Flow{state: StateViewing}
	}
	return &Flow{state: StateNotSubmitted}
}

func (f *Flow) State() FlowState {
	return f.state
}

// Submit performs the one-way not-submitted → submitted transition and stamps
// the review. Calling it on an already submitted review is an error; edits go
// through Update.
func (f *Flow) Submit(review types.ReviewMechanism) (types.ReviewMechanism, error) {
	if f.state != StateNotSubmitted {
		return types.ReviewMechanism{}, ErrAlreadySubmitted
	}
	review.SubmittedAt = time.Now().Unix()
	f.state = StateViewing
	return review, nil
}

// BeginEdit toggles from viewing to editing.
func (f *Flow) BeginEdit() error {
	if f.state != StateViewing {
		return ErrNotSubmitted
	}
	f.state = StateEditing
	return nil
}

// Update applies an edit and returns to viewing. The original submission
// timestamp is preserved.
func (f *Flow) Update(existing types.ReviewMechanism, updated types.ReviewMechanism) (types.ReviewMechanism, error) {
	if f.state != StateEditing {
		return types.ReviewMechanism{}, ErrNotSubmitted
	}
	updated.SubmittedAt = existing.SubmittedAt
	f.state = StateViewing
	return updated, nil
}

// CancelEdit returns to viewing without applying changes.
func (f *Flow) CancelEdit() {
	if f.state == StateEditing {
		f.state = StateViewing
	}
}
