package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Details is the full case record captured by the intake wizard. Each wizard
// step owns exactly one top-level key; nothing outside the owning step may
// write to it (enforced through the lenses in the casedata package).
type Details struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Psychologist string             `bson:"psychologist" json:"psychologist"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`

	Demographic         DemographicDetails         `bson:"demographic" json:"demographic"`
	Developmental       DevelopmentalDetails       `bson:"developmental" json:"developmental"`
	Academic            AcademicDetails            `bson:"academic" json:"academic"`
	FamilyEnvironmental FamilyEnvironmentalDetails `bson:"familyEnvironmental" json:"familyEnvironmental"`
	// Keyed rows, one per fixed behaviour (see BehaviourKeys).
	BehaviouralEmotional map[string]BehaviourRow `bson:"behaviouralEmotional" json:"behaviouralEmotional" validate:"dive"`
	// Key spelling kept as-is for compatibility with already stored records.
	ScreenAndDigitalAddiction ScreenAndDigitalAddiction `bson:"ScreenAndDigitalAddication" json:"ScreenAndDigitalAddication"`
	// Keyed rows, one per fixed habit (see HabitKeys).
	OtherAddictionPattern       map[string]HabitRow         `bson:"otherAddictionPattern" json:"otherAddictionPattern" validate:"dive"`
	ChildsSelfPerception        ChildsSelfPerception        `bson:"childsSelfPerception" json:"childsSelfPerception"`
	GoalsAndExpectations        GoalsAndExpectations        `bson:"goalsAndExpectations" json:"goalsAndExpectations"`
	TherapistInitialObservation TherapistInitialObservation `bson:"therapistInitialObservation" json:"therapistInitialObservation"`

	// Set true once a scoring session exists for this record.
	ScoringSystem bool `bson:"scoringSystem" json:"scoringSystem"`

	ReviewMechanism *ReviewMechanism `bson:"reviewMechanism,omitempty" json:"reviewMechanism,omitempty"`
}

type DemographicDetails struct {
	Child     ChildDetails    `bson:"child" json:"child"`
	Guardians GuardianDetails `bson:"guardians" json:"guardians"`
}

type ChildDetails struct {
	Name           string   `bson:"name" json:"name" validate:"required"`
	Age            string   `bson:"age" json:"age" validate:"required,number"`
	DateOfBirth    string   `bson:"dateOfBirth" json:"dateOfBirth" validate:"required"`
	Gender         string   `bson:"gender" json:"gender" validate:"required,caseoption=gender"`
	Languages      []string `bson:"languages" json:"languages"`
	Address        string   `bson:"address" json:"address" validate:"required"`
	Class          string   `bson:"class" json:"class" validate:"required"`
	School         string   `bson:"school" json:"school" validate:"required"`
	Religion       string   `bson:"religion" json:"religion"`
	Culture        string   `bson:"culture" json:"culture"`
	Siblings       []string `bson:"siblings" json:"siblings"`
	SiblingType    string   `bson:"siblingType" json:"siblingType"`
	EconomicStatus string   `bson:"economicStatus" json:"economicStatus" validate:"required,caseoption=economicStatus"`
}

type Guardian struct {
	Name        string `bson:"name" json:"name" validate:"required"`
	Age         string `bson:"age" json:"age"`
	Education   string `bson:"education" json:"education"`
	Occupation  string `bson:"occupation" json:"occupation"`
	PovertyLine string `bson:"povertyLine" json:"povertyLine" validate:"omitempty,caseoption=povertyLine"`
}

type GuardianDetails struct {
	Father           Guardian `bson:"father" json:"father"`
	Mother           Guardian `bson:"mother" json:"mother"`
	Incomes          string   `bson:"incomes" json:"incomes"`
	PrimaryCareGiver string   `bson:"primaryCareGiver" json:"primaryCareGiver" validate:"required"`
	// URL of an uploaded locality map, optional.
	LocationMap     string `bson:"map" json:"map"`
	FamilyStructure string `bson:"familyStructure" json:"familyStructure" validate:"required,caseoption=familyStructure"`
}

type DevelopmentalDetails struct {
	Speech            string `bson:"speech" json:"speech" validate:"required,caseoption=milestone"`
	MotorSkills       string `bson:"motorSkills" json:"motorSkills" validate:"required,caseoption=milestone"`
	SocialInteraction string `bson:"socialInteraction" json:"socialInteraction" validate:"required,caseoption=milestone"`
	MedicalHistory    string `bson:"medicalHistory" json:"medicalHistory"`
	LearningConcerns  string `bson:"learningConcerns" json:"learningConcerns"`
	CurrentMedication string `bson:"currentMedication" json:"currentMedication"`
	SleepPattern      string `bson:"sleepPattern" json:"sleepPattern"`
}

type AcademicDetails struct {
	Performance        string `bson:"performance" json:"performance" validate:"required,caseoption=performance"`
	FavouriteSubjects  string `bson:"favouriteSubjects" json:"favouriteSubjects"`
	DifficultSubjects  string `bson:"difficultSubjects" json:"difficultSubjects"`
	SchoolConcerns     string `bson:"schoolConcerns" json:"schoolConcerns"`
	TeacherRemarks     string `bson:"teacherRemarks" json:"teacherRemarks"`
	CoCurricular       string `bson:"coCurricular" json:"coCurricular"`
}

type FamilyEnvironmentalDetails struct {
	ParentalRelationship string `bson:"parentalRelationship" json:"parentalRelationship" validate:"required,caseoption=parentalRelationship"`
	HomeEnvironment      string `bson:"homeEnvironment" json:"homeEnvironment" validate:"required,caseoption=homeEnvironment"`
	DisciplineStyle      string `bson:"disciplineStyle" json:"disciplineStyle" validate:"required,caseoption=disciplineStyle"`
	RecentFamilyChanges  string `bson:"recentFamilyChanges" json:"recentFamilyChanges"`
	SupportSystem        string `bson:"supportSystem" json:"supportSystem"`
}

// BehaviourRow is one observed behaviour: how often it occurs plus a free note.
type BehaviourRow struct {
	Value string `bson:"value" json:"value" validate:"required,caseoption=frequency4"`
	Note  string `bson:"note" json:"note"`
}

type ScreenAndDigitalAddiction struct {
	ParentPerspective ParentScreenPerspective `bson:"parentPerspective" json:"parentPerspective"`
	ChildPerspective  ChildScreenPerspective  `bson:"childPerspective" json:"childPerspective"`
}

type ParentScreenPerspective struct {
	DailyScreenTime string   `bson:"dailyScreenTime" json:"dailyScreenTime" validate:"required,caseoption=screenTime"`
	UsageTypes      []string `bson:"usageTypes" json:"usageTypes" validate:"required,min=1"`
	OwnsDevice      string   `bson:"ownsDevice" json:"ownsDevice" validate:"required,caseoption=yesNo"`
	SupervisedUse   string   `bson:"supervisedUse" json:"supervisedUse" validate:"required,caseoption=yesNo"`
	// May contain values outside ImpactObservedOptions: free-text entries
	// merged in through the "Others" extension field.
	ImpactObserved []string `bson:"impactObserved" json:"impactObserved"`
}

type ChildScreenPerspective struct {
	FavouriteActivities  string `bson:"favouriteActivities" json:"favouriteActivities"`
	FeelingWithoutDevice string `bson:"feelingWithoutDevice" json:"feelingWithoutDevice" validate:"required,caseoption=deviceFeeling"`
}

// HabitRow is one habitual pattern outside screen use.
type HabitRow struct {
	Present      bool   `bson:"present" json:"present"`
	Frequency    string `bson:"frequency" json:"frequency" validate:"omitempty,caseoption=frequency3"`
	Duration     string `bson:"duration" json:"duration"`
	Observations string `bson:"observations" json:"observations"`
}

type ChildsSelfPerception struct {
	// Three-slot lists; missing slots are stored as empty strings.
	LikesThemselves []string `bson:"likesThemselves" json:"likesThemselves"`
	WantToImprove   []string `bson:"wantToImprove" json:"wantToImprove"`
	SelfDescription string   `bson:"selfDescription" json:"selfDescription"`
	BiggestWorry    string   `bson:"biggestWorry" json:"biggestWorry"`
}

type GoalsAndExpectations struct {
	ParentsGoals []string `bson:"parentsGoals" json:"parentsGoals"`
	ChildsGoals  []string `bson:"childsGoals" json:"childsGoals"`
}

type TherapistInitialObservation struct {
	Cooperation         string `bson:"cooperation" json:"cooperation" validate:"required,caseoption=cooperation"`
	GeneralAppearance   string `bson:"generalAppearance" json:"generalAppearance"`
	SpeechClarity       string `bson:"speechClarity" json:"speechClarity"`
	ActivityLevel       string `bson:"activityLevel" json:"activityLevel"`
	AttentionSpan       string `bson:"attentionSpan" json:"attentionSpan" validate:"omitempty,number"`
	InitialImpressions  string `bson:"initialImpressions" json:"initialImpressions"`
	RecommendedSessions string `bson:"recommendedSessions" json:"recommendedSessions" validate:"omitempty,number"`
}
