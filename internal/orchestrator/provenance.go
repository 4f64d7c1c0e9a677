package orchestrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/AKhubcher/TaskManager/internal/adf"
	"github.com/AKhubcher/TaskManager/internal/planner"
)

// Provenance records how, when, and from what goal a plan was generated.
// It is attached as a comment to the first created epic.
type Provenance struct {
	Generator string
	ID        string
	Timestamp time.Time
	Goal      string
	Options   planner.Options
	Epics     int
	Stories   int
	Subtasks  int
}

// Comment renders the record as a document-format comment body.
func (p Provenance) Comment() adf.Doc {
	context := fmt.Sprintf("// context: labels=%s components=%s assignee=%s",
		joinOrNone(p.Options.Labels), joinOrNone(p.Options.Components), orNone(p.Options.Assignee))

	lines := []string{
		"*Plan provenance*",
		"",
		"Generated by: " + p.Generator,
		"Run ID: " + p.ID,
		"Generated at: " + p.Timestamp.UTC().Format(time.RFC3339),
		"Goal: " + p.Goal,
		"",
		context,
		"",
		fmt.Sprintf("Created: %d epics, %d stories, %d subtasks", p.Epics, p.Stories, p.Subtasks),
	}
	return adf.FromText(strings.Join(lines, "\n"))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ",")
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}
