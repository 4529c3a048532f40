package types

// ReviewMechanism is the secondary review form attached to a case record once
// the intake phase is completed. It is embedded in the Details document and
// exists only after its first submission.
type ReviewMechanism struct {
	StepsTaken                  string `bson:"stepsTaken" json:"stepsTaken" validate:"required"`
	ProgressEffectivenessRating string `bson:"progressEffectivenessRating" json:"progressEffectivenessRating" validate:"required,caseoption=progressEffectiveness"`
	// Keyed rows, one per fixed progress area (see ProgressAreaKeys).
	ObservableProgressIndicators    map[string]ProgressIndicatorRow `bson:"observableProgressIndicators" json:"observableProgressIndicators" validate:"dive"`
	WhyInterventionsWorking         WhyInterventionsWorking         `bson:"whyInventionsWorking" json:"whyInventionsWorking"`
	EvaluationSummary               string                          `bson:"evaluationSummary" json:"evaluationSummary" validate:"required"`
	ActionPlanOrNextSteps           []string                        `bson:"actionPlanOrNextSteps" json:"actionPlanOrNextSteps" validate:"required,min=1"`
	PlannedChangesOrRecommendations string                          `bson:"plannedChangesOrRecommendations" json:"plannedChangesOrRecommendations"`
	// URL of the uploaded signature image.
	Signature   string `bson:"signature" json:"signature" validate:"required"`
	Date        string `bson:"date" json:"date" validate:"required"`
	SubmittedAt int64  `bson:"submittedAt" json:"submittedAt"`
}

// ProgressIndicatorRow records the observed change for one progress area.
type ProgressIndicatorRow struct {
	Change string `bson:"change" json:"change" validate:"required,caseoption=progressChange"`
	Notes  string `bson:"notes" json:"notes"`
}

type WhyInterventionsWorking struct {
	RelatedToMentoonsProvider ReasonSelectionRecord `bson:"relatedToMentoonsProvider" json:"relatedToMentoonsProvider"`
	RelatedToChild            ReasonSelectionRecord `bson:"relatedToChild" json:"relatedToChild"`
}

// ReasonSelectionRecord is the persisted shape of a reason multi-select. The
// Reasons array mixes fixed-list values with an OTHERS_* sentinel that gates
// the OtherReason free text. The review package converts this into a tagged
// Reason type so sentinel handling lives in exactly one place.
type ReasonSelectionRecord struct {
	Reasons     []string `bson:"reasons" json:"reasons"`
	OtherReason string   `bson:"otherReason" json:"otherReason"`
	Remarks     string   `bson:"remarks" json:"remarks"`
}
