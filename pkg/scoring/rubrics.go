package scoring

// The rubric table is static: score sheets persist only indices and numbers
// and are replayed against this table at render time. Order matters, records
// reference headings and questions by position.

type RubricQuestion struct {
	Text  string
	Point int
}

type RubricHeading struct {
	Label string
	// Point is the heading cap, always the sum of its question caps.
	Point     int
	Questions []RubricQuestion
}

type Rubric struct {
	SessionName string
	Label       string
	Headings    []RubricHeading
}

// MaxScore returns the total reachable score of the rubric.
func (r Rubric) MaxScore() int {
	total := 0
	for _, h := range r.Headings {
		total += h.Point
	}
	return total
}

// SessionNames lists the workshop keys with a rubric, in display order.
var SessionNames = []string{
	"buddyCamp",
	"teenCamp",
	"familyCamp",
	"careerCorner",
	"silverCircle",
}

// RubricFor returns the rubric of a workshop key. The second return value is
// false for unknown keys; callers must treat the lookup as fallible.
func RubricFor(sessionName string) (Rubric, bool) {
	rubric, ok := rubrics[sessionName]
	return rubric, ok
}

var rubrics = map[string]Rubric{
	"buddyCamp": {
		SessionName: "buddyCamp",
		Label:       "Buddy Camp (6-12 years)",
		Headings: []RubricHeading{
			{
				Label: "Engagement & Participation",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Responds to mentor prompts", Point: 5},
					{Text: "Stays with the group activity", Point: 5},
					{Text: "Completes the session task", Point: 5},
				},
			},
			{
				Label: "Emotional Expression",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Names own feelings when asked", Point: 5},
					{Text: "Comforts or includes peers", Point: 5},
				},
			},
			{
				Label: "Behavioural Regulation",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Waits for their turn", Point: 5},
					{Text: "Follows session rules", Point: 5},
					{Text: "Recovers from frustration", Point: 5},
				},
			},
		},
	},
	"teenCamp": {
		SessionName: "teenCamp",
		Label:       "Teen Camp (13-19 years)",
		Headings: []RubricHeading{
			{
				Label: "Self-Awareness",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Identifies personal strengths", Point: 5},
					{Text: "Reflects on own behaviour", Point: 5},
					{Text: "Accepts constructive feedback", Point: 5},
				},
			},
			{
				Label: "Peer Interaction",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Initiates conversation with peers", Point: 5},
					{Text: "Resolves disagreements respectfully", Point: 5},
				},
			},
			{
				Label: "Screen-Life Balance",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Reports reduced screen conflict at home", Point: 5},
					{Text: "Engages in offline activities", Point: 5},
					{Text: "Keeps the agreed device schedule", Point: 5},
				},
			},
			{
				Label: "Goal Orientation",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Sets a concrete weekly goal", Point: 5},
					{Text: "Follows up on the previous goal", Point: 5},
				},
			},
		},
	},
	"familyCamp": {
		SessionName: "familyCamp",
		Label:       "Family Camp (20+ years)",
		Headings: []RubricHeading{
			{
				Label: "Family Communication",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Listens without interrupting", Point: 5},
					{Text: "Expresses concerns calmly", Point: 5},
					{Text: "Acknowledges other family members", Point: 5},
				},
			},
			{
				Label: "Shared Activities",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Participates in the family exercise", Point: 5},
					{Text: "Plans a shared offline activity", Point: 5},
				},
			},
			{
				Label: "Conflict Handling",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Uses the agreed de-escalation steps", Point: 5},
					{Text: "Reaches a compromise in role play", Point: 5},
				},
			},
		},
	},
	"careerCorner": {
		SessionName: "careerCorner",
		Label:       "Career Corner",
		Headings: []RubricHeading{
			{
				Label: "Exploration",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Researches a chosen field", Point: 5},
					{Text: "Asks relevant questions to the mentor", Point: 5},
				},
			},
			{
				Label: "Planning",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Drafts a realistic next step", Point: 5},
					{Text: "Identifies required skills", Point: 5},
					{Text: "Schedules follow-up actions", Point: 5},
				},
			},
			{
				Label: "Presentation",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Presents the plan to the group", Point: 5},
					{Text: "Responds to questions confidently", Point: 5},
				},
			},
		},
	},
	"silverCircle": {
		SessionName: "silverCircle",
		Label:       "Silver Circle (60+ years)",
		Headings: []RubricHeading{
			{
				Label: "Social Connection",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Shares experiences with the circle", Point: 5},
					{Text: "Engages with other members", Point: 5},
				},
			},
			{
				Label: "Digital Comfort",
				Point: 15,
				Questions: []RubricQuestion{
					{Text: "Uses the practiced app feature", Point: 5},
					{Text: "Recognises common online scams", Point: 5},
					{Text: "Keeps healthy device habits", Point: 5},
				},
			},
			{
				Label: "Well-being",
				Point: 10,
				Questions: []RubricQuestion{
					{Text: "Reports on the weekly routine", Point: 5},
					{Text: "Names one positive change", Point: 5},
				},
			},
		},
	},
}
