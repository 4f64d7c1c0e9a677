package tracker

import "strings"

// TypeNames holds the resolved issue-type name for each plan level.
type TypeNames struct {
	Epic    string
	Story   string
	Subtask string
}

// ResolveTypeNames picks per-level type names from a project's configured
// types, case-insensitively, preferring the conventional names and keeping
// the project's own casing. Levels with no match fall back to
// Epic/Task/Subtask.
func ResolveTypeNames(types []IssueType) TypeNames {
	configured := make(map[string]string, len(types))
	for _, t := range types {
		configured[strings.ToLower(t.Name)] = t.Name
	}

	pick := func(fallback string, candidates ...string) string {
		for _, c := range candidates {
			if name, ok := configured[strings.ToLower(c)]; ok {
				return name
			}
		}
		return fallback
	}

	return TypeNames{
		Epic:    pick("Epic", "Epic"),
		Story:   pick("Task", "Story", "Task", "User Story"),
		Subtask: pick("Subtask", "Subtask", "Sub-task"),
	}
}
