// Package history persists the record of previously created plan issues and
// answers the duplicate-suppression question: has an issue with this summary
// already been created?
package history

import "strings"

// Entry records one previously created issue.
type Entry struct {
	Summary string `toml:"summary" json:"summary"`
	Key     string `toml:"key" json:"key"`
	Parent  string `toml:"parent,omitempty" json:"parent,omitempty"`
}

// History is the persisted duplicate-suppression structure. ID is a fresh
// identifier stamped on reset.
type History struct {
	ID       string  `toml:"id"`
	Epics    []Entry `toml:"epics,omitempty"`
	Stories  []Entry `toml:"stories,omitempty"`
	Subtasks []Entry `toml:"subtasks,omitempty"`
}

// Normalize lowercases a summary and collapses runs of whitespace so that
// duplicate checks ignore case and spacing but nothing else.
func Normalize(summary string) string {
	return strings.Join(strings.Fields(strings.ToLower(summary)), " ")
}

// Contains reports whether any recorded entry matches the summary after
// normalization.
func (h *History) Contains(summary string) bool {
	want := Normalize(summary)
	for _, entries := range [][]Entry{h.Epics, h.Stories, h.Subtasks} {
		for _, e := range entries {
			if Normalize(e.Summary) == want {
				return true
			}
		}
	}
	return false
}

// Len returns the total number of recorded entries.
func (h *History) Len() int {
	return len(h.Epics) + len(h.Stories) + len(h.Subtasks)
}
