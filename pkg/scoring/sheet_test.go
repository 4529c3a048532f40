package scoring

import (
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestNewScoreSheet(t *testing.T) {
	t.Run("with a known session", func(t *testing.T) {
		sheet, err := NewScoreSheet("buddyCamp", 3, "2026-08-29")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sheet.CurrentHeading() != 0 {
			t.Errorf("unexpected heading: %d", sheet.CurrentHeading())
		}
	})

	t.Run("with an unknown session", func(t *testing.T) {
		_, err := NewScoreSheet("notACamp", 1, "2026-08-29")
		if err == nil {
			t.Error("should return an error")
		}
	})
}

func TestSetScore(t *testing.T) {
	sheet, err := NewScoreSheet("buddyCamp", 1, "2026-08-29")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("records a score", func(t *testing.T) {
		if err := sheet.SetScore(0, 1, 4); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		score, ok := sheet.Score(0, 1)
		if !ok || score != 4 {
			t.Errorf("unexpected score: %d %t", score, ok)
		}
	})

	t.Run("clamps to the question cap", func(t *testing.T) {
		if err := sheet.SetScore(0, 0, 99); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if score, _ := sheet.Score(0, 0); score != 5 {
			t.Errorf("unexpected score: %d", score)
		}

		if err := sheet.SetScore(0, 2, -3); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if score, _ := sheet.Score(0, 2); score != 0 {
			t.Errorf("unexpected score: %d", score)
		}
	})

	t.Run("rejects out-of-range indices", func(t *testing.T) {
		if err := sheet.SetScore(99, 0, 1); err == nil {
			t.Error("should return an error")
		}
		if err := sheet.SetScore(0, 99, 1); err == nil {
			t.Error("should return an error")
		}
		if err := sheet.SetScore(-1, 0, 1); err == nil {
			t.Error("should return an error")
		}
	})
}

func TestStepGating(t *testing.T) {
	sheet, err := NewScoreSheet("buddyCamp", 1, "2026-08-29")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("next is blocked until the heading is complete", func(t *testing.T) {
		if sheet.ValidateStep() {
			t.Error("empty heading should not validate")
		}
		if sheet.Next() {
			t.Error("should not advance")
		}

		_ = sheet.SetScore(0, 0, 3)
		_ = sheet.SetScore(0, 1, 4)
		if sheet.Next() {
			t.Error("should not advance with one question missing")
		}

		_ = sheet.SetScore(0, 2, 5)
		if !sheet.ValidateStep() {
			t.Error("complete heading should validate")
		}
		if !sheet.Next() {
			t.Error("should advance")
		}
		if sheet.CurrentHeading() != 1 {
			t.Errorf("unexpected heading: %d", sheet.CurrentHeading())
		}
	})

	t.Run("previous is never gated", func(t *testing.T) {
		sheet.Previous()
		if sheet.CurrentHeading() != 0 {
			t.Errorf("unexpected heading: %d", sheet.CurrentHeading())
		}
		sheet.Previous()
		if sheet.CurrentHeading() != 0 {
			t.Errorf("unexpected heading: %d", sheet.CurrentHeading())
		}
	})
}

func TestBuildSubmissionPayload(t *testing.T) {
	t.Run("sums are derived from the score map", func(t *testing.T) {
		sheet, err := NewScoreSheet("buddyCamp", 2, "2026-08-29")
		if err != nil {
			t.Fatal(err)
		}
		_ = sheet.SetScore(0, 0, 5)
		_ = sheet.SetScore(0, 1, 3)
		_ = sheet.SetScore(0, 2, 2)
		_ = sheet.SetScore(1, 0, 4)
		_ = sheet.SetScore(1, 1, 1)
		_ = sheet.SetScore(2, 0, 2)
		_ = sheet.SetScore(2, 1, 3)
		_ = sheet.SetScore(2, 2, 4)

		payload := sheet.BuildSubmissionPayload()
		if payload.Scors.TotalScore != 24 {
			t.Errorf("unexpected total: %d", payload.Scors.TotalScore)
		}
		sum := 0
		for _, heading := range payload.Scors.Headings {
			headingSum := 0
			for _, question := range heading.Questions {
				headingSum += question.Score
			}
			if heading.HeadingScore != headingSum {
				t.Errorf("heading %d sum mismatch: %d != %d", heading.HeadingIndex, heading.HeadingScore, headingSum)
			}
			sum += heading.HeadingScore
		}
		if payload.Scors.TotalScore != sum {
			t.Errorf("total %d does not match heading sum %d", payload.Scors.TotalScore, sum)
		}
	})

	t.Run("unscored questions count as zero", func(t *testing.T) {
		sheet, err := NewScoreSheet("buddyCamp", 1, "2026-08-29")
		if err != nil {
			t.Fatal(err)
		}
		_ = sheet.SetScore(1, 0, 5)

		payload := sheet.BuildSubmissionPayload()
		if payload.Scors.TotalScore != 5 {
			t.Errorf("unexpected total: %d", payload.Scors.TotalScore)
		}
		if len(payload.Scors.Headings) != 3 {
			t.Errorf("unexpected heading count: %d", len(payload.Scors.Headings))
		}
		for _, heading := range payload.Scors.Headings {
			if heading.HeadingIndex == 1 {
				continue
			}
			if heading.HeadingScore != 0 {
				t.Errorf("unexpected heading score: %d", heading.HeadingScore)
			}
		}
	})
}

func TestSheetFromSession(t *testing.T) {
	t.Run("back-fills stored scores", func(t *testing.T) {
		session := types.SessionScoring{
			SessionName: "buddyCamp",
			Scors: types.ScoringEnvelope{
				Headings: []types.HeadingScore{
					{
						HeadingIndex: 0,
						Questions: []types.QuestionScore{
							{QuestionIndex: 0, Score: 3},
							{QuestionIndex: 2, Score: 5},
						},
					},
				},
			},
		}
		sheet, err := SheetFromSession(session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score, ok := sheet.Score(0, 0); !ok || score != 3 {
			t.Errorf("unexpected score: %d %t", score, ok)
		}
		if score, ok := sheet.Score(0, 2); !ok || score != 5 {
			t.Errorf("unexpected score: %d %t", score, ok)
		}
	})

	t.Run("drops entries outside the rubric", func(t *testing.T) {
		session := types.SessionScoring{
			SessionName: "buddyCamp",
			Scors: types.ScoringEnvelope{
				Headings: []types.HeadingScore{
					{
						HeadingIndex: 42,
						Questions:    []types.QuestionScore{{QuestionIndex: 0, Score: 3}},
					},
					{
						HeadingIndex: 0,
						Questions:    []types.QuestionScore{{QuestionIndex: 42, Score: 3}},
					},
				},
			},
		}
		sheet, err := SheetFromSession(session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := sheet.BuildSubmissionPayload()
		if payload.Scors.TotalScore != 0 {
			t.Errorf("unexpected total: %d", payload.Scors.TotalScore)
		}
	})

	t.Run("with an unknown session", func(t *testing.T) {
		_, err := SheetFromSession(types.SessionScoring{SessionName: "notACamp"})
		if err == nil {
			t.Error("should return an error")
		}
	})
}
