package scoring

import (
	"fmt"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// ScoreSheet is the capture state of one scoring run: a sparse map from
// heading and question index to the recorded score, stepped heading by
// heading. Forward navigation is gated, the final payload is always
// re-derived from the map, never from previously stored sums.
type ScoreSheet struct {
	SessionName   string
	SessionNumber int
	SessionDate   string

	rubric Rubric
	// current heading index (the step of the scoring wizard)
	mainIdx int
	scores  map[int]map[int]int
}

// NewScoreSheet starts an empty sheet for a workshop session.
func NewScoreSheet(sessionName string, sessionNumber int, sessionDate string) (*ScoreSheet, error) {
	rubric, ok := RubricFor(sessionName)
	if !ok {
		return nil, fmt.Errorf("no rubric for session %q", sessionName)
	}
	return &ScoreSheet{
		SessionName:   sessionName,
		SessionNumber: sessionNumber,
		SessionDate:   sessionDate,
		rubric:        rubric,
		scores:        make(map[int]map[int]int),
	}, nil
}

// SheetFromSession back-fills a sheet from a persisted score sheet for edit
// mode. Entries whose indices fall outside the current rubric are dropped.
func SheetFromSession(session types.SessionScoring) (*ScoreSheet, error) {
	sheet, err := NewScoreSheet(session.SessionName, session.SessionNumber, session.SessionDate)
	if err != nil {
		return nil, err
	}
	for _, heading := range session.Scors.Headings {
		for _, question := range heading.Questions {
			// out-of-range entries are ignored, not an error
			_ = sheet.SetScore(heading.HeadingIndex, question.QuestionIndex, question.Score)
		}
	}
	return sheet, nil
}

// CurrentHeading returns the index of the heading currently being scored.
func (s *ScoreSheet) CurrentHeading() int {
	return s.mainIdx
}

// IsLastHeading reports whether the sheet is on its final step.
func (s *ScoreSheet) IsLastHeading() bool {
	return s.mainIdx >= len(s.rubric.Headings)-1
}

// SetScore records a score for one question. Indices outside the rubric are
// rejected; scores are clamped to [0, question cap].
func (s *ScoreSheet) SetScore(headingIdx, questionIdx, score int) error {
	if headingIdx < 0 || headingIdx >= len(s.rubric.Headings) {
		return fmt.Errorf("heading index %d out of range", headingIdx)
	}
	heading := s.rubric.Headings[headingIdx]
	if questionIdx < 0 || questionIdx >= len(heading.Questions) {
		return fmt.Errorf("question index %d out of range for heading %d", questionIdx, headingIdx)
	}

	if score < 0 {
		score = 0
	}
	if pointCap := heading.Questions[questionIdx].Point; score > pointCap {
		score = pointCap
	}

	if s.scores[headingIdx] == nil {
		s.scores[headingIdx] = make(map[int]int)
	}
	s.scores[headingIdx][questionIdx] = score
	return nil
}

// Score returns the recorded score of one question and whether one exists.
func (s *ScoreSheet) Score(headingIdx, questionIdx int) (int, bool) {
	score, ok := s.scores[headingIdx][questionIdx]
	return score, ok
}

// ValidateStep reports whether every question under the current heading has a
// recorded score.
func (s *ScoreSheet) ValidateStep() bool {
	if s.mainIdx < 0 || s.mainIdx >= len(s.rubric.Headings) {
		return false
	}
	recorded := s.scores[s.mainIdx]
	for questionIdx := range s.rubric.Headings[s.mainIdx].Questions {
		if _, ok := recorded[questionIdx]; !ok {
			return false
		}
	}
	return true
}

// Next advances to the next heading if the current one is completely scored.
// It reports whether the step changed.
func (s *ScoreSheet) Next() bool {
	if s.IsLastHeading() || !s.ValidateStep() {
		return false
	}
	s.mainIdx++
	return true
}

// Previous moves one heading back, at minimum to the first one.
func (s *ScoreSheet) Previous() {
	if s.mainIdx > 0 {
		s.mainIdx--
	}
}

// BuildSubmissionPayload assembles the persisted record. Heading scores and
// the total are summed from the current map at call time; questions without a
// recorded score count as zero.
func (s *ScoreSheet) BuildSubmissionPayload() types.SessionScoring {
	envelope := types.ScoringEnvelope{
		Headings: make([]types.HeadingScore, 0, len(s.rubric.Headings)),
	}
	for headingIdx, heading := range s.rubric.Headings {
		headingScore := types.HeadingScore{
			HeadingIndex: headingIdx,
			Questions:    make([]types.QuestionScore, 0, len(heading.Questions)),
		}
		for questionIdx := range heading.Questions {
			score := s.scores[headingIdx][questionIdx]
			headingScore.Questions = append(headingScore.Questions, types.QuestionScore{
				QuestionIndex: questionIdx,
				Score:         score,
			})
			headingScore.HeadingScore += score
		}
		envelope.TotalScore += headingScore.HeadingScore
		envelope.Headings = append(envelope.Headings, headingScore)
	}

	return types.SessionScoring{
		SessionName:   s.SessionName,
		SessionNumber: s.SessionNumber,
		SessionDate:   s.SessionDate,
		Scors:         envelope,
		CreatedAt:     time.Now().Unix(),
	}
}
