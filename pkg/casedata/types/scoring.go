package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionScoring is one persisted score sheet for a workshop session. Only
// indices and numeric scores are stored; question texts and point caps live in
// the static rubric table (scoring package) and are joined back at render
// time.
//
// Invariant: Scors.TotalScore equals the sum of all heading scores and each
// HeadingScore equals the sum of its question scores. The scoring package
// re-derives both on every submission, stored values are never trusted.
type SessionScoring struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CaseID        primitive.ObjectID `bson:"caseID" json:"caseID"`
	SessionName   string             `bson:"sessionName" json:"sessionName"`
	SessionNumber int                `bson:"sessionNumber" json:"sessionNumber"`
	SessionDate   string             `bson:"sessionDate" json:"sessionDate"`
	// Field name kept as-is for compatibility with already stored records.
	Scors     ScoringEnvelope `bson:"scors" json:"scors"`
	CreatedAt int64           `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64           `bson:"updatedAt" json:"updatedAt"`
}

type ScoringEnvelope struct {
	Headings   []HeadingScore `bson:"headings" json:"headings"`
	TotalScore int            `bson:"totalScore" json:"totalScore"`
}

type HeadingScore struct {
	HeadingIndex int             `bson:"headingIndex" json:"headingIndex"`
	HeadingScore int             `bson:"headingScore" json:"headingScore"`
	Questions    []QuestionScore `bson:"questions" json:"questions"`
}

type QuestionScore struct {
	QuestionIndex int `bson:"questionIndex" json:"questionIndex"`
	Score         int `bson:"score" json:"score"`
}
