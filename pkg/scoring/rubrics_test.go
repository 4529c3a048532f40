package scoring

import (
	"testing"
)

func TestRubricTable(t *testing.T) {
	t.Run("every listed session has a rubric", func(t *testing.T) {
		for _, name := range SessionNames {
			rubric, ok := RubricFor(name)
			if !ok {
				t.Errorf("no rubric for %s", name)
				continue
			}
			if rubric.SessionName != name {
				t.Errorf("rubric %s carries session name %s", name, rubric.SessionName)
			}
			if len(rubric.Headings) == 0 {
				t.Errorf("rubric %s has no headings", name)
			}
		}
	})

	t.Run("heading caps equal the sum of question caps", func(t *testing.T) {
		for _, name := range SessionNames {
			rubric, _ := RubricFor(name)
			for _, heading := range rubric.Headings {
				sum := 0
				for _, question := range heading.Questions {
					sum += question.Point
				}
				if heading.Point != sum {
					t.Errorf("%s / %s: cap %d != question sum %d", name, heading.Label, heading.Point, sum)
				}
			}
		}
	})

	t.Run("max score sums the heading caps", func(t *testing.T) {
		rubric, _ := RubricFor("buddyCamp")
		if rubric.MaxScore() != 40 {
			t.Errorf("unexpected max score: %d", rubric.MaxScore())
		}
	})

	t.Run("with an unknown key", func(t *testing.T) {
		if _, ok := RubricFor("notACamp"); ok {
			t.Error("should not resolve")
		}
	})
}
