package planner

// AreaType identifies a fixed category of project work detected in a goal.
type AreaType string

const (
	AreaFrontend      AreaType = "frontend"
	AreaBackend       AreaType = "backend"
	AreaAuth          AreaType = "auth"
	AreaTesting       AreaType = "testing"
	AreaDeployment    AreaType = "deployment"
	AreaData          AreaType = "data"
	AreaMobile        AreaType = "mobile"
	AreaDocumentation AreaType = "documentation"
	// AreaImplementation is the catch-all used when no other area matches.
	AreaImplementation AreaType = "implementation"
)

// WorkArea is a single classified category of work with the goal substrings
// that triggered its detection. Keywords may be empty only for the
// implementation fallback.
type WorkArea struct {
	Type     AreaType `json:"type"`
	Keywords []string `json:"keywords,omitempty"`
}

// Complexity is the goal-level tier driving story/subtask fan-out.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// GoalAnalysis is the classification result for a single goal. WorkAreas is
// never empty: goals matching no area fall back to implementation.
type GoalAnalysis struct {
	WorkAreas     []WorkArea `json:"workAreas"`
	Complexity    Complexity `json:"complexity"`
	WordCount     int        `json:"wordCount"`
	SentenceCount int        `json:"sentenceCount"`
}

// Difficulty is the per-node rating derived from child count and textual
// complexity indicators.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// NodeKind distinguishes the three plan node variants for estimation.
type NodeKind string

const (
	KindEpic    NodeKind = "epic"
	KindStory   NodeKind = "story"
	KindSubtask NodeKind = "subtask"
)

// Phase is a catalog atom: one canonical unit of story-level work within an
// area, as an action plus a focus phrase.
type Phase struct {
	Action string
	Focus  string
}

// Subtask is a leaf plan node.
type Subtask struct {
	Summary       string
	Description   string
	Labels        []string
	Difficulty    Difficulty
	EstimatedTime string
}

// Story is a mid-level plan node with GIVEN/WHEN/THEN acceptance criteria
// and a fixed set of subtasks.
type Story struct {
	Summary            string
	Description        string
	AcceptanceCriteria string
	Labels             []string
	Difficulty         Difficulty
	EstimatedTime      string
	Subtasks           []Subtask
}

// Epic is a top-level plan node covering one work area.
type Epic struct {
	Name          string
	Summary       string
	Description   string
	Labels        []string
	Difficulty    Difficulty
	EstimatedTime string
	Stories       []Story
}

// Plan is the compiler's sole output. Ownership transfers wholesale to the
// caller; the compiler never mutates a plan after handoff.
type Plan struct {
	Goal     string
	Analysis GoalAnalysis
	Epics    []Epic
}

// Options carries caller-supplied context merged into a compiled plan.
// Unrecognized fields arriving from external adapters are dropped before
// they reach here.
type Options struct {
	Labels     []string // merged into every generated label list
	Components []string // passed through unchanged to the tracker client
	Assignee   string   // passed through unchanged to the tracker client
}

// StoryCount returns the total story count across all epics.
func (p *Plan) StoryCount() int {
	n := 0
	for _, e := range p.Epics {
		n += len(e.Stories)
	}
	return n
}

// SubtaskCount returns the total subtask count across all epics.
func (p *Plan) SubtaskCount() int {
	n := 0
	for _, e := range p.Epics {
		for _, s := range e.Stories {
			n += len(s.Subtasks)
		}
	}
	return n
}
