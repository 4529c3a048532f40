package scoring

import (
	"fmt"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// Renderable score views: the stored record carries only indices and numbers,
// the join below re-attaches question texts and point caps from the rubric.
// Failure policy, stated once: stored entries with indices outside the rubric
// are ignored, rubric questions without a stored score render as zero.

type RenderableQuestion struct {
	Text  string `json:"text"`
	Point int    `json:"point"`
	Score int    `json:"score"`
}

type RenderableHeading struct {
	Label     string               `json:"label"`
	Point     int                  `json:"point"`
	Score     int                  `json:"score"`
	Questions []RenderableQuestion `json:"questions"`
}

type RenderableScoring struct {
	SessionName   string              `json:"sessionName"`
	SessionLabel  string              `json:"sessionLabel"`
	SessionNumber int                 `json:"sessionNumber"`
	SessionDate   string              `json:"sessionDate"`
	Headings      []RenderableHeading `json:"headings"`
	TotalScore    int                 `json:"totalScore"`
	MaxScore      int                 `json:"maxScore"`
}

// JoinWithRubric joins a persisted score sheet with the static rubric of its
// session. The total is summed from the joined scores, not read from the
// stored envelope.
func JoinWithRubric(session types.SessionScoring) (RenderableScoring, error) {
	rubric, ok := RubricFor(session.SessionName)
	if !ok {
		return RenderableScoring{}, fmt.Errorf("no rubric for session %q", session.SessionName)
	}

	stored := make(map[int]map[int]int, len(session.Scors.Headings))
	for _, heading := range session.Scors.Headings {
		if heading.HeadingIndex < 0 || heading.HeadingIndex >= len(rubric.Headings) {
			continue
		}
		questionCount := len(rubric.Headings[heading.HeadingIndex].Questions)
		row := make(map[int]int, len(heading.Questions))
		for _, question := range heading.Questions {
			if question.QuestionIndex < 0 || question.QuestionIndex >= questionCount {
				continue
			}
			row[question.QuestionIndex] = question.Score
		}
		stored[heading.HeadingIndex] = row
	}

	view := RenderableScoring{
		SessionName:   session.SessionName,
		SessionLabel:  rubric.Label,
		SessionNumber: session.SessionNumber,
		SessionDate:   session.SessionDate,
		Headings:      make([]RenderableHeading, 0, len(rubric.Headings)),
		MaxScore:      rubric.MaxScore(),
	}

	for headingIdx, heading := range rubric.Headings {
		renderableHeading := RenderableHeading{
			Label:     heading.Label,
			Point:     heading.Point,
			Questions: make([]RenderableQuestion, 0, len(heading.Questions)),
		}
		for questionIdx, question := range heading.Questions {
			score := stored[headingIdx][questionIdx]
			renderableHeading.Questions = append(renderableHeading.Questions, RenderableQuestion{
				Text:  question.Text,
				Point: question.Point,
				Score: score,
			})
			renderableHeading.Score += score
		}
		view.TotalScore += renderableHeading.Score
		view.Headings = append(view.Headings, renderableHeading)
	}

	return view, nil
}
