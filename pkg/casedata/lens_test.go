package casedata

import (
	"reflect"
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func TestLensUpdate(t *testing.T) {
	t.Run("with a section update", func(t *testing.T) {
		details := EmptyDetails()
		details.Demographic.Child.Name = "Test Child"
		details.Academic.Performance = "Good"

		updated := Update(details, DevelopmentalLens, func(s types.DevelopmentalDetails) types.DevelopmentalDetails {
			s.Speech = "Delayed"
			return s
		})

		if updated.Developmental.Speech != "Delayed" {
			t.Errorf("unexpected speech value: %s", updated.Developmental.Speech)
		}
	})

	t.Run("sibling sections stay untouched", func(t *testing.T) {
		details := EmptyDetails()
		details.Demographic.Child.Name = "Test Child"
		details.Academic.Performance = "Good"

		updated := Update(details, DevelopmentalLens, func(s types.DevelopmentalDetails) types.DevelopmentalDetails {
			s.Speech = "On-time"
			return s
		})

		if updated.Demographic.Child.Name != "Test Child" {
			t.Errorf("unexpected child name: %s", updated.Demographic.Child.Name)
		}
		if updated.Academic.Performance != "Good" {
			t.Errorf("unexpected performance: %s", updated.Academic.Performance)
		}
	})

	t.Run("applying the same update twice equals applying it once", func(t *testing.T) {
		details := EmptyDetails()
		details.Demographic.Child.Name = "Test Child"

		setSpeech := func(s types.DevelopmentalDetails) types.DevelopmentalDetails {
			s.Speech = "Delayed"
			return s
		}

		once := Update(details, DevelopmentalLens, setSpeech)
		twice := Update(once, DevelopmentalLens, setSpeech)

		if !reflect.DeepEqual(once, twice) {
			t.Errorf("double application diverged: %+v != %+v", twice, once)
		}
	})

	t.Run("input value is not mutated", func(t *testing.T) {
		details := EmptyDetails()
		_ = Update(details, AcademicLens, func(s types.AcademicDetails) types.AcademicDetails {
			s.Performance = "Poor"
			return s
		})

		if details.Academic.Performance != "" {
			t.Errorf("input was mutated: %s", details.Academic.Performance)
		}
	})

	t.Run("lens keys match the wire names", func(t *testing.T) {
		if DemographicLens.Key != "demographic" {
			t.Errorf("unexpected key: %s", DemographicLens.Key)
		}
		if ScreenAddictionLens.Key != "ScreenAndDigitalAddication" {
			t.Errorf("unexpected key: %s", ScreenAddictionLens.Key)
		}
	})
}
