package entities

// Unspecified is the placeholder stored in any metadata field the analyzer
// could not resolve. Records never carry an empty string or null instead.
const Unspecified = "unspecified"

// Category caps applied to every AnalysisResult.
const (
	MaxDecisions           = 20
	MaxActions             = 30
	MaxClarificationPoints = 15
	MaxUpcomingPoints      = 15
)

// AnalysisResult is the structured record extracted from one meeting-notes text
type AnalysisResult struct {
	Decisions           []DecisionRecord `json:"decisions"`
	Actions             []ActionRecord   `json:"actions"`
	ClarificationPoints []string         `json:"clarificationPoints"`
	UpcomingPoints      []string         `json:"upcomingPoints"`
}

// DecisionRecord represents a decision taken during the meeting
type DecisionRecord struct {
	Decision        string `json:"decision"`
	Context         string `json:"context"`
	ImpactPotential string `json:"impactPotential"`
}

// ActionRecord represents a follow-up task with its inferred owner and due date
type ActionRecord struct {
	Action      string `json:"action"`
	Responsible string `json:"responsible"`
	DueDate     string `json:"dueDate"`
}

// NewAnalysisResult returns a result with every category initialised to an
// empty, non-nil slice.
func NewAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Decisions:           make([]DecisionRecord, 0),
		Actions:             make([]ActionRecord, 0),
		ClarificationPoints: make([]string, 0),
		UpcomingPoints:      make([]string, 0),
	}
}

// Normalize replaces nil categories with empty slices so the result always
// serialises with arrays, never null.
func (r *AnalysisResult) Normalize() {
	if r.Decisions == nil {
		r.Decisions = make([]DecisionRecord, 0)
	}
	if r.Actions == nil {
		r.Actions = make([]ActionRecord, 0)
	}
	if r.ClarificationPoints == nil {
		r.ClarificationPoints = make([]string, 0)
	}
	if r.UpcomingPoints == nil {
		r.UpcomingPoints = make([]string, 0)
	}
}

// IsEmpty reports whether no category holds any entry
func (r AnalysisResult) IsEmpty() bool {
	return len(r.Decisions) == 0 && len(r.Actions) == 0 &&
		len(r.ClarificationPoints) == 0 && len(r.UpcomingPoints) == 0
}

// Clone returns a deep copy of the result
func (r AnalysisResult) Clone() AnalysisResult {
	out := AnalysisResult{
		Decisions:           append(make([]DecisionRecord, 0, len(r.Decisions)), r.Decisions...),
		Actions:             append(make([]ActionRecord, 0, len(r.Actions)), r.Actions...),
		ClarificationPoints: append(make([]string, 0, len(r.ClarificationPoints)), r.ClarificationPoints...),
		UpcomingPoints:      append(make([]string, 0, len(r.UpcomingPoints)), r.UpcomingPoints...),
	}
	return out
}
