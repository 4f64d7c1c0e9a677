package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AKhubcher/TaskManager/internal/history"
	"github.com/AKhubcher/TaskManager/internal/orchestrator"
	"github.com/AKhubcher/TaskManager/internal/planner"
)

// --- Plan-specific output ---

// Analysis prints the classification summary for a goal.
func (p *Printer) Analysis(a planner.GoalAnalysis) {
	areas := make([]string, len(a.WorkAreas))
	for i, wa := range a.WorkAreas {
		areas[i] = string(wa.Type)
	}
	fmt.Fprintf(os.Stderr, dim+"analysis: areas=[%s] complexity=%s words=%d sentences=%d"+reset+"\n",
		strings.Join(areas, ", "), a.Complexity, a.WordCount, a.SentenceCount)
}

// PlanTree prints the full epic/story/subtask tree to stderr.
func (p *Printer) PlanTree(plan *planner.Plan) {
	fmt.Fprintf(os.Stderr, "\n"+bold+cyan+"plan: %d epics, %d stories, %d subtasks"+reset+"\n",
		len(plan.Epics), plan.StoryCount(), plan.SubtaskCount())
	for _, e := range plan.Epics {
		fmt.Fprintf(os.Stderr, cyan+"◆ %s"+reset+" %s\n", e.Summary, annotation(string(e.Difficulty), e.EstimatedTime))
		for _, s := range e.Stories {
			fmt.Fprintf(os.Stderr, "  "+bold+"▸ %s"+reset+" %s\n", s.Summary, annotation(string(s.Difficulty), s.EstimatedTime))
			for _, st := range s.Subtasks {
				fmt.Fprintf(os.Stderr, "    "+dim+"· %s"+reset+" %s\n", st.Summary, annotation(string(st.Difficulty), st.EstimatedTime))
			}
		}
	}
	fmt.Fprintln(os.Stderr)
}

// ApplyResult prints a summary of one apply invocation, distinguishing the
// all-duplicates no-op from a run that created issues.
func (p *Printer) ApplyResult(res *orchestrator.Result) {
	if res.NothingCreated() {
		fmt.Fprintf(os.Stderr, yellow+bold+"⚠ nothing created"+reset+": all %d candidate issue(s) were duplicates\n", res.Skipped)
		return
	}
	fmt.Fprintf(os.Stderr, green+bold+"✓ created"+reset+" %d epic(s), %d story(ies), %d subtask(s)",
		res.CreatedEpics, res.CreatedStories, res.CreatedSubtasks)
	if res.Skipped > 0 {
		fmt.Fprintf(os.Stderr, dim+" (%d duplicate(s) skipped)"+reset, res.Skipped)
	}
	fmt.Fprintln(os.Stderr)
}

// History prints the duplicate-suppression history.
func (p *Printer) History(h *history.History) {
	if h.Len() == 0 {
		fmt.Fprintln(os.Stderr, dim+"history is empty"+reset)
		return
	}
	if h.ID != "" {
		fmt.Fprintf(os.Stderr, dim+"history id: %s"+reset+"\n", h.ID)
	}
	section := func(name string, entries []history.Entry) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(os.Stderr, bold+"%s (%d)"+reset+"\n", name, len(entries))
		for _, e := range entries {
			if e.Parent != "" {
				fmt.Fprintf(os.Stderr, "  %s  %s "+dim+"(parent %s)"+reset+"\n", e.Key, e.Summary, e.Parent)
				continue
			}
			fmt.Fprintf(os.Stderr, "  %s  %s\n", e.Key, e.Summary)
		}
	}
	section("epics", h.Epics)
	section("stories", h.Stories)
	section("subtasks", h.Subtasks)
}

func annotation(difficulty, estimate string) string {
	return dim + "[" + difficulty + ", " + estimate + "]" + reset
}
