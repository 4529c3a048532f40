package render

import (
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// Read-path view models. Enum fields render as a badge row marking the stored
// value among all allowed options; free-text fields render the value or a
// dash. An absent record or section renders the placeholder view instead of
// failing.

const emptyPlaceholder = "-"

type Badge struct {
	Option   string `json:"option"`
	Selected bool   `json:"selected"`
}

type BadgeField struct {
	Label  string  `json:"label"`
	Badges []Badge `json:"badges"`
}

type TextField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ListField struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type Section struct {
	Title  string     `json:"title"`
	Fields []any      `json:"fields"`
	Rows   []KeyedRow `json:"rows,omitempty"`
}

type KeyedRow struct {
	Label  string `json:"label"`
	Fields []any  `json:"fields"`
}

type CaseRecordView struct {
	ID           string    `json:"id"`
	Psychologist string    `json:"psychologist"`
	Loaded       bool      `json:"loaded"`
	Sections     []Section `json:"sections"`
}

// NewBadgeField marks exactly the stored value as selected; when the value is
// empty or not among the options, no badge is selected.
func NewBadgeField(label string, optionSet string, value string) BadgeField {
	options := types.Options(optionSet)
	badges := make([]Badge, len(options))
	for i, option := range options {
		badges[i] = Badge{Option: option, Selected: value != "" && option == value}
	}
	return BadgeField{Label: label, Badges: badges}
}

func newBadgeFieldFromOptions(label string, options []string, value string) BadgeField {
	badges := make([]Badge, len(options))
	for i, option := range options {
		badges[i] = Badge{Option: option, Selected: value != "" && option == value}
	}
	return BadgeField{Label: label, Badges: badges}
}

// NewTextField substitutes the placeholder for empty values.
func NewTextField(label string, value string) TextField {
	if value == "" {
		value = emptyPlaceholder
	}
	return TextField{Label: label, Value: value}
}

func newListField(label string, values []string) ListField {
	if len(values) == 0 {
		values = []string{emptyPlaceholder}
	}
	return ListField{Label: label, Values: values}
}

// RenderCaseRecord builds the full read-only view of a case record. A nil
// record yields the not-yet-loaded placeholder.
func RenderCaseRecord(record *types.Details) CaseRecordView {
	if record == nil {
		return CaseRecordView{Loaded: false}
	}

	view := CaseRecordView{
		ID:           record.ID.Hex(),
		Psychologist: record.Psychologist,
		Loaded:       true,
	}

	view.Sections = append(view.Sections,
		demographicSection(record.Demographic),
		developmentalSection(record.Developmental),
		academicSection(record.Academic),
		familySection(record.FamilyEnvironmental),
		behaviouralSection(record.BehaviouralEmotional),
		screenSection(record.ScreenAndDigitalAddiction),
		habitSection(record.OtherAddictionPattern),
		selfPerceptionSection(record.ChildsSelfPerception),
		goalsSection(record.GoalsAndExpectations),
		observationSection(record.TherapistInitialObservation),
	)
	return view
}

func demographicSection(d types.DemographicDetails) Section {
	return Section{
		Title: "Demographic Details",
		Fields: []any{
			NewTextField("Name", d.Child.Name),
			NewTextField("Age", d.Child.Age),
			NewTextField("Date of Birth", d.Child.DateOfBirth),
			NewBadgeField("Gender", "gender", d.Child.Gender),
			newListField("Languages", d.Child.Languages),
			NewTextField("Address", d.Child.Address),
			NewTextField("Class", d.Child.Class),
			NewTextField("School", d.Child.School),
			NewTextField("Religion", d.Child.Religion),
			NewTextField("Culture", d.Child.Culture),
			newListField("Siblings", d.Child.Siblings),
			NewTextField("Sibling Type", d.Child.SiblingType),
			NewBadgeField("Economic Status", "economicStatus", d.Child.EconomicStatus),
			NewTextField("Father's Name", d.Guardians.Father.Name),
			NewBadgeField("Father: Poverty Line", "povertyLine", d.Guardians.Father.PovertyLine),
			NewTextField("Mother's Name", d.Guardians.Mother.Name),
			NewBadgeField("Mother: Poverty Line", "povertyLine", d.Guardians.Mother.PovertyLine),
			NewTextField("Incomes", d.Guardians.Incomes),
			NewTextField("Primary Care Giver", d.Guardians.PrimaryCareGiver),
			NewBadgeField("Family Structure", "familyStructure", d.Guardians.FamilyStructure),
		},
	}
}

func developmentalSection(d types.DevelopmentalDetails) Section {
	return Section{
		Title: "Developmental & Medical",
		Fields: []any{
			NewBadgeField("Speech", "milestone", d.Speech),
			NewBadgeField("Motor Skills", "milestone", d.MotorSkills),
			NewBadgeField("Social Interaction", "milestone", d.SocialInteraction),
			NewTextField("Medical History", d.MedicalHistory),
			NewTextField("Learning Concerns", d.LearningConcerns),
			NewTextField("Current Medication", d.CurrentMedication),
			NewTextField("Sleep Pattern", d.SleepPattern),
		},
	}
}

func academicSection(a types.AcademicDetails) Section {
	return Section{
		Title: "Academic Details",
		Fields: []any{
			NewBadgeField("Performance", "performance", a.Performance),
			NewTextField("Favourite Subjects", a.FavouriteSubjects),
			NewTextField("Difficult Subjects", a.DifficultSubjects),
			NewTextField("School Concerns", a.SchoolConcerns),
			NewTextField("Teacher Remarks", a.TeacherRemarks),
			NewTextField("Co-curricular Activities", a.CoCurricular),
		},
	}
}

func familySection(f types.FamilyEnvironmentalDetails) Section {
	return Section{
		Title: "Family & Environmental",
		Fields: []any{
			NewBadgeField("Parental Relationship", "parentalRelationship", f.ParentalRelationship),
			NewBadgeField("Home Environment", "homeEnvironment", f.HomeEnvironment),
			NewBadgeField("Discipline Style", "disciplineStyle", f.DisciplineStyle),
			NewTextField("Recent Family Changes", f.RecentFamilyChanges),
			NewTextField("Support System", f.SupportSystem),
		},
	}
}

func behaviouralSection(rows map[string]types.BehaviourRow) Section {
	section := Section{Title: "Behavioural & Emotional"}
	for _, key := range types.BehaviourKeys {
		row := rows[key]
		section.Rows = append(section.Rows, KeyedRow{
			Label: types.BehaviourLabels[key],
			Fields: []any{
				NewBadgeField("Frequency", "frequency4", row.Value),
				NewTextField("Note", row.Note),
			},
		})
	}
	return section
}

func screenSection(s types.ScreenAndDigitalAddiction) Section {
	return Section{
		Title: "Screen & Digital Addiction",
		Fields: []any{
			NewBadgeField("Daily Screen Time", "screenTime", s.ParentPerspective.DailyScreenTime),
			newListField("Usage Types", s.ParentPerspective.UsageTypes),
			NewBadgeField("Owns a Device", "yesNo", s.ParentPerspective.OwnsDevice),
			NewBadgeField("Supervised Use", "yesNo", s.ParentPerspective.SupervisedUse),
			newListField("Impact Observed", s.ParentPerspective.ImpactObserved),
			NewTextField("Favourite Activities (Child)", s.ChildPerspective.FavouriteActivities),
			NewBadgeField("Feeling Without Device", "deviceFeeling", s.ChildPerspective.FeelingWithoutDevice),
		},
	}
}

func habitSection(rows map[string]types.HabitRow) Section {
	section := Section{Title: "Other Addiction Patterns"}
	for _, key := range types.HabitKeys {
		row := rows[key]
		presence := "No"
		if row.Present {
			presence = "Yes"
		}
		section.Rows = append(section.Rows, KeyedRow{
			Label: types.HabitLabels[key],
			Fields: []any{
				newBadgeFieldFromOptions("Present", types.Options("yesNo"), presence),
				NewBadgeField("Frequency", "frequency3", row.Frequency),
				NewTextField("Duration", row.Duration),
				NewTextField("Observations", row.Observations),
			},
		})
	}
	return section
}

func selfPerceptionSection(p types.ChildsSelfPerception) Section {
	return Section{
		Title: "Child's Self Perception",
		Fields: []any{
			newListField("Likes About Themselves", p.LikesThemselves),
			newListField("Wants To Improve", p.WantToImprove),
			NewTextField("Self Description", p.SelfDescription),
			NewTextField("Biggest Worry", p.BiggestWorry),
		},
	}
}

func goalsSection(g types.GoalsAndExpectations) Section {
	return Section{
		Title: "Goals & Expectations",
		Fields: []any{
			newListField("Parents' Goals", g.ParentsGoals),
			newListField("Child's Goals", g.ChildsGoals),
		},
	}
}

func observationSection(o types.TherapistInitialObservation) Section {
	return Section{
		Title: "Therapist's Initial Observation",
		Fields: []any{
			NewBadgeField("Cooperation", "cooperation", o.Cooperation),
			NewTextField("General Appearance", o.GeneralAppearance),
			NewTextField("Speech Clarity", o.SpeechClarity),
			NewTextField("Activity Level", o.ActivityLevel),
			NewTextField("Attention Span (minutes)", o.AttentionSpan),
			NewTextField("Initial Impressions", o.InitialImpressions),
			NewTextField("Recommended Sessions", o.RecommendedSessions),
		},
	}
}

// RenderReview builds the read-only view of a review mechanism; nil renders
// the placeholder.
func RenderReview(review *types.ReviewMechanism) (Section, bool) {
	if review == nil {
		return Section{Title: "Review Mechanism"}, false
	}

	section := Section{
		Title: "Review Mechanism",
		Fields: []any{
			NewTextField("Steps Taken", review.StepsTaken),
			NewBadgeField("Progress Effectiveness", "progressEffectiveness", review.ProgressEffectivenessRating),
			NewTextField("Evaluation Summary", review.EvaluationSummary),
			newListField("Action Plan / Next Steps", review.ActionPlanOrNextSteps),
			NewTextField("Planned Changes / Recommendations", review.PlannedChangesOrRecommendations),
			NewTextField("Signature", review.Signature),
			NewTextField("Date", review.Date),
		},
	}
	for _, area := range types.ProgressAreaKeys {
		row := review.ObservableProgressIndicators[area]
		section.Rows = append(section.Rows, KeyedRow{
			Label: types.ProgressAreaLabels[area],
			Fields: []any{
				NewBadgeField("Change", "progressChange", row.Change),
				NewTextField("Notes", row.Notes),
			},
		})
	}
	return section, true
}
