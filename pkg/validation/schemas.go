package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Field paths in error messages use the wire names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// caseoption=<table> checks membership in the shared option tables.
	if err := validate.RegisterValidation("caseoption", func(fl validator.FieldLevel) bool {
		return types.IsOption(fl.Param(), fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// FieldError is one validation failure, addressed by the wire path of the
// offending field.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// ValidateAll runs the combined schema over the whole record: the field union
// of every section schema plus the cross-field rules the tag syntax cannot
// express. The returned slice is ordered by section, then field.
func ValidateAll(details types.Details) []FieldError {
	errs := collectStructErrors(details)
	errs = append(errs, checkFixedRows(details)...)
	errs = append(errs, checkHabitRows(details)...)
	errs = append(errs, checkThreeSlotLists(details)...)
	return orderBySection(errs)
}

// ValidateSection runs the combined schema and keeps only the failures that
// belong to the section owning the given Details key.
func ValidateSection(sectionKey string, details types.Details) []FieldError {
	var sectionErrs []FieldError
	for _, err := range ValidateAll(details) {
		// Map-backed sections report bracketed row paths, e.g.
		// behaviouralEmotional[anxiety].value.
		if err.Path == sectionKey ||
			strings.HasPrefix(err.Path, sectionKey+".") ||
			strings.HasPrefix(err.Path, sectionKey+"[") {
			sectionErrs = append(sectionErrs, err)
		}
	}
	return sectionErrs
}

// ValidateReview validates a review mechanism submission.
func ValidateReview(review types.ReviewMechanism) []FieldError {
	var errs []FieldError
	if err := validate.Struct(review); err != nil {
		errs = append(errs, translate(err)...)
	}

	for _, area := range types.ProgressAreaKeys {
		if _, ok := review.ObservableProgressIndicators[area]; !ok {
			errs = append(errs, FieldError{
				Path:    "observableProgressIndicators." + area,
				Message: "missing progress area",
			})
		}
	}

	errs = append(errs, checkReasonSelection("whyInventionsWorking.relatedToMentoonsProvider", review.WhyInterventionsWorking.RelatedToMentoonsProvider, types.ReasonOthersProvider)...)
	errs = append(errs, checkReasonSelection("whyInventionsWorking.relatedToChild", review.WhyInterventionsWorking.RelatedToChild, types.ReasonOthersChild)...)

	for _, item := range review.ActionPlanOrNextSteps {
		if !containsString(types.ActionPlanOptions, item) {
			errs = append(errs, FieldError{
				Path:    "actionPlanOrNextSteps",
				Message: fmt.Sprintf("unknown action plan item %q", item),
			})
		}
	}
	return errs
}

// AggregateMessage joins all failures into the single line-broken message the
// wizard surfaces on final submit.
func AggregateMessage(errs []FieldError) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

func collectStructErrors(details types.Details) []FieldError {
	err := validate.Struct(details)
	if err == nil {
		return nil
	}
	return translate(err)
}

func translate(err error) []FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Path: "", Message: err.Error()}}
	}
	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Path:    trimRootNamespace(fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return fieldErrs
}

func trimRootNamespace(ns string) string {
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number":
		return "must be a number"
	case "min":
		return "needs at least " + fe.Param() + " entry"
	case "caseoption":
		return "must be one of: " + strings.Join(types.Options(fe.Param()), ", ")
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// checkFixedRows verifies the behaviour map carries exactly the fixed rows.
func checkFixedRows(details types.Details) []FieldError {
	var errs []FieldError
	for _, key := range types.BehaviourKeys {
		if _, ok := details.BehaviouralEmotional[key]; !ok {
			errs = append(errs, FieldError{
				Path:    "behaviouralEmotional." + key,
				Message: "is required",
			})
		}
	}
	return errs
}

// checkHabitRows verifies habit rows marked present carry a frequency.
func checkHabitRows(details types.Details) []FieldError {
	var errs []FieldError
	for _, key := range types.HabitKeys {
		row, ok := details.OtherAddictionPattern[key]
		if !ok {
			errs = append(errs, FieldError{
				Path:    "otherAddictionPattern." + key,
				Message: "is required",
			})
			continue
		}
		if row.Present && row.Frequency == "" {
			errs = append(errs, FieldError{
				Path:    "otherAddictionPattern." + key + ".frequency",
				Message: "is required when the habit is present",
			})
		}
	}
	return errs
}

// checkThreeSlotLists requires at least the first slot of every three-slot
// list to be filled in.
func checkThreeSlotLists(details types.Details) []FieldError {
	var errs []FieldError
	lists := []struct {
		path  string
		slots []string
	}{
		{"childsSelfPerception.likesThemselves", details.ChildsSelfPerception.LikesThemselves},
		{"childsSelfPerception.wantToImprove", details.ChildsSelfPerception.WantToImprove},
		{"goalsAndExpectations.parentsGoals", details.GoalsAndExpectations.ParentsGoals},
		{"goalsAndExpectations.childsGoals", details.GoalsAndExpectations.ChildsGoals},
	}
	for _, list := range lists {
		if !hasNonEmptySlot(list.slots) {
			errs = append(errs, FieldError{Path: list.path, Message: "needs at least 1 entry"})
		}
	}
	return errs
}

func hasNonEmptySlot(slots []string) bool {
	for _, slot := range slots {
		if strings.TrimSpace(slot) != "" {
			return true
		}
	}
	return false
}

func checkReasonSelection(path string, selection types.ReasonSelectionRecord, sentinel string) []FieldError {
	var errs []FieldError
	if len(selection.Reasons) == 0 {
		errs = append(errs, FieldError{Path: path + ".reasons", Message: "needs at least 1 entry"})
	}
	for _, reason := range selection.Reasons {
		if reason == sentinel && strings.TrimSpace(selection.OtherReason) == "" {
			errs = append(errs, FieldError{
				Path:    path + ".otherReason",
				Message: "is required when other is selected",
			})
		}
	}
	return errs
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// sectionOrder reproduces the wizard's step order for error aggregation.
var sectionOrder = map[string]int{
	"demographic":                 1,
	"developmental":               2,
	"academic":                    3,
	"familyEnvironmental":         4,
	"behaviouralEmotional":        5,
	"ScreenAndDigitalAddication":  6,
	"otherAddictionPattern":       7,
	"childsSelfPerception":        8,
	"goalsAndExpectations":        9,
	"therapistInitialObservation": 10,
}

func orderBySection(errs []FieldError) []FieldError {
	ordered := make([]FieldError, 0, len(errs))
	for step := 1; step <= len(sectionOrder); step++ {
		for _, err := range errs {
			if sectionOrder[rootOf(err.Path)] == step {
				ordered = append(ordered, err)
			}
		}
	}
	// anything not attributable to a section goes last
	for _, err := range errs {
		if sectionOrder[rootOf(err.Path)] == 0 {
			ordered = append(ordered, err)
		}
	}
	return ordered
}

func rootOf(path string) string {
	if idx := strings.IndexAny(path, ".["); idx >= 0 {
		return path[:idx]
	}
	return path
}
