package types

// Shared option tables. Editors, validation, read-only renderers and exporters
// all resolve enum fields against these lists; they are not duplicated anywhere
// else.

const (
	// Sentinel inside ImpactObserved that toggles the free-text extension
	// field. It is replaced by the parsed values and never persisted.
	ImpactOthersSentinel = "Others"

	// Sentinels inside the review mechanism reason multi-selects.
	ReasonOthersProvider = "OTHERS_PROVIDER"
	ReasonOthersChild    = "OTHERS_CHILD"
)

// optionTables maps an option set name (as used by the `caseoption` validation
// rule) to its allowed values, in display order.
var optionTables = map[string][]string{
	"gender":         {"Male", "Female", "Other"},
	"economicStatus": {"Lower", "Lower-Middle", "Middle", "Upper-Middle", "Upper"},
	"povertyLine":    {"Below Poverty Line", "At Poverty Line", "Above Poverty Line", "Prefer Not To Say"},
	"familyStructure": {
		"Nuclear Family", "Joint Family", "Single Parent", "Extended Family",
	},
	"milestone":   {"On-time", "Delayed"},
	"performance": {"Excellent", "Good", "Average", "Below Average", "Poor"},
	"parentalRelationship": {
		"Harmonious", "Occasional Conflicts", "Frequent Conflicts", "Separated/Divorced",
	},
	"homeEnvironment": {"Calm", "Busy", "Stressful"},
	"disciplineStyle": {"Authoritative", "Permissive", "Strict", "Inconsistent"},
	"frequency4":      {"Never", "Sometimes", "Often", "Always"},
	"frequency3":      {"Low", "Moderate", "High"},
	"screenTime": {
		"Less than 1 hour", "1-2 hours", "2-4 hours", "More than 4 hours",
	},
	"yesNo": {"Yes", "No"},
	"deviceFeeling": {
		"Calm", "Bored", "Irritated", "Angry", "Anxious",
	},
	"cooperation": {"Cooperative", "Hesitant", "Resistant"},
	"progressEffectiveness": {
		"Effective", "Partially Effective", "Not Effective",
	},
	"progressChange": {"Positive Change", "No Change", "Negative Change"},
}

// Options returns the allowed values of a named option set, or nil for an
// unknown name. The returned slice must not be modified.
func Options(name string) []string {
	return optionTables[name]
}

// IsOption reports whether value is a member of the named option set.
func IsOption(name string, value string) bool {
	for _, opt := range optionTables[name] {
		if opt == value {
			return true
		}
	}
	return false
}

// BehaviourKeys are the fixed rows of the behavioural/emotional section, in
// display order.
var BehaviourKeys = []string{
	"tantrums",
	"anxiety",
	"aggression",
	"socialWithdrawal",
	"attentionIssues",
	"moodSwings",
	"defiance",
}

// BehaviourLabels maps a behaviour key to its display label.
var BehaviourLabels = map[string]string{
	"tantrums":         "Temper tantrums",
	"anxiety":          "Anxiety or excessive worry",
	"aggression":       "Aggressive behaviour",
	"socialWithdrawal": "Social withdrawal",
	"attentionIssues":  "Difficulty paying attention",
	"moodSwings":       "Frequent mood swings",
	"defiance":         "Defiance towards adults",
}

// HabitKeys are the fixed rows of the other-addiction-pattern section, in
// display order.
var HabitKeys = []string{
	"junkFood",
	"caffeine",
	"nailBiting",
	"hairPulling",
	"thumbSucking",
	"otherHabit",
}

// HabitLabels maps a habit key to its display label.
var HabitLabels = map[string]string{
	"junkFood":     "Junk food cravings",
	"caffeine":     "Caffeinated drinks",
	"nailBiting":   "Nail biting",
	"hairPulling":  "Hair pulling",
	"thumbSucking": "Thumb sucking",
	"otherHabit":   "Other habit",
}

// UsageTypeOptions are the selectable device usage categories.
var UsageTypeOptions = []string{
	"Games", "Educational Apps", "Social Media", "Videos", "Messaging",
}

// ImpactObservedOptions are the selectable screen-impact values. The stored
// array may additionally contain free-text values entered through the
// "Others" extension.
var ImpactObservedOptions = []string{
	"Reduced outdoor play",
	"Sleep disturbance",
	"Irritability when device is removed",
	"Declining academic performance",
	"Reduced family interaction",
	ImpactOthersSentinel,
}

// ProviderReasonOptions are the fixed reasons why interventions are working,
// related to the Mentoons provider side.
var ProviderReasonOptions = []string{
	"Consistent session schedule",
	"Good rapport with the mentor",
	"Age-appropriate activities",
	"Regular parent communication",
}

// ChildReasonOptions are the fixed reasons why interventions are working,
// related to the child.
var ChildReasonOptions = []string{
	"Active participation in sessions",
	"Openness to feedback",
	"Support from family",
	"Improved self-awareness",
}

// ProgressAreaKeys are the fixed observable-progress areas of the review
// mechanism, in display order.
var ProgressAreaKeys = []string{
	"emotionalRegulation",
	"socialInteraction",
	"academicEngagement",
	"screenTimeBalance",
	"familyRelationship",
}

// ProgressAreaLabels maps a progress area key to its display label.
var ProgressAreaLabels = map[string]string{
	"emotionalRegulation": "Emotional regulation",
	"socialInteraction":   "Social interaction",
	"academicEngagement":  "Academic engagement",
	"screenTimeBalance":   "Screen time balance",
	"familyRelationship":  "Family relationship",
}

// ActionPlanOptions are the selectable next steps of the review mechanism.
var ActionPlanOptions = []string{
	"Continue current plan",
	"Increase session frequency",
	"Introduce group activities",
	"Involve parents more closely",
	"Refer to specialist",
	"Close the case",
}
