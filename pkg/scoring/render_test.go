package scoring

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestJoinWithRubric(t *testing.T) {
	t.Run("joins stored scores with rubric texts", func(t *testing.T) {
		session := types.SessionScoring{
			SessionName:   "buddyCamp",
			SessionNumber: 2,
			SessionDate:   "2026-08-29",
			Scors: types.ScoringEnvelope{
				Headings: []types.HeadingScore{
					{
						HeadingIndex: 0,
						Questions: []types.QuestionScore{
							{QuestionIndex: 0, Score: 4},
							{QuestionIndex: 1, Score: 2},
						},
					},
				},
				// stored total is stale on purpose, it must be ignored
				TotalScore: 999,
			},
		}

		view, err := JoinWithRubric(session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.SessionLabel != "Buddy Camp (6-12 years)" {
			t.Errorf("unexpected label: %s", view.SessionLabel)
		}
		if view.TotalScore != 6 {
			t.Errorf("unexpected total: %d", view.TotalScore)
		}
		if view.MaxScore != 40 {
			t.Errorf("unexpected max: %d", view.MaxScore)
		}
		if len(view.Headings) != 3 {
			t.Fatalf("unexpected heading count: %d", len(view.Headings))
		}
		first := view.Headings[0]
		if first.Score != 6 {
			t.Errorf("unexpected heading score: %d", first.Score)
		}
		if first.Questions[0].Text == "" || first.Questions[0].Point != 5 {
			t.Errorf("rubric text not joined: %v", first.Questions[0])
		}
		if first.Questions[2].Score != 0 {
			t.Errorf("missing score should render as zero: %d", first.Questions[2].Score)
		}
	})

	t.Run("ignores entries outside the rubric", func(t *testing.T) {
		session := types.SessionScoring{
			SessionName: "buddyCamp",
			Scors: types.ScoringEnvelope{
				Headings: []types.HeadingScore{
					{HeadingIndex: 42, Questions: []types.QuestionScore{{QuestionIndex: 0, Score: 5}}},
					{HeadingIndex: 0, Questions: []types.QuestionScore{{QuestionIndex: 42, Score: 5}}},
				},
			},
		}
		view, err := JoinWithRubric(session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.TotalScore != 0 {
			t.Errorf("unexpected total: %d", view.TotalScore)
		}
	})

	t.Run("with an unknown session", func(t *testing.T) {
		_, err := JoinWithRubric(types.SessionScoring{SessionName: "notACamp"})
		if err == nil {
			t.Error("should return an error")
		}
	})
}
