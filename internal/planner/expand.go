package planner

import (
	"fmt"
	"strings"
)

// summaryGoalLimit caps how much of the raw goal is carried into an epic
// summary.
const summaryGoalLimit = 60

// storyCounts fixes how many catalog phases become stories per epic, by tier.
var storyCounts = map[Complexity]int{
	ComplexityLow:    3,
	ComplexityMedium: 3,
	ComplexityHigh:   6,
}

// subtaskCounts fixes how many generic verbs become subtasks per story, by tier.
var subtaskCounts = map[Complexity]int{
	ComplexityLow:    3,
	ComplexityMedium: 3,
	ComplexityHigh:   5,
}

// GenerateEpicForWorkArea expands one classified work area into an epic with
// its stories and subtasks. It only composes strings and copies catalog
// data; it never fails given a valid analysis. Difficulty and estimates are
// assigned later by the estimator.
func GenerateEpicForWorkArea(area WorkArea, goal string, analysis GoalAnalysis, opts Options) Epic {
	display, _ := InfoFor(area.Type)
	labels := append([]string{string(area.Type)}, opts.Labels...)

	epic := Epic{
		Name:        display,
		Summary:     display + ": " + truncate(goal, summaryGoalLimit),
		Description: epicDescription(area, goal),
		Labels:      labels,
	}

	phases := PhasesFor(area.Type)
	n := storyCounts[analysis.Complexity]
	if n > len(phases) {
		n = len(phases)
	}
	for _, phase := range phases[:n] {
		epic.Stories = append(epic.Stories, generateStory(phase, analysis, labels))
	}
	return epic
}

// generateStory instantiates one catalog phase as a story with its generic
// subtasks.
func generateStory(phase Phase, analysis GoalAnalysis, labels []string) Story {
	story := Story{
		Summary:            phase.Action + ": " + phase.Focus,
		Description:        fmt.Sprintf("%s for the project, focusing on %s.", phase.Action, phase.Focus),
		AcceptanceCriteria: acceptanceCriteria(phase),
		Labels:             labels,
	}

	verbs := SubtaskVerbs()
	n := subtaskCounts[analysis.Complexity]
	if n > len(verbs) {
		n = len(verbs)
	}
	for _, verb := range verbs[:n] {
		story.Subtasks = append(story.Subtasks, Subtask{
			Summary:     verb + " " + phase.Focus,
			Description: fmt.Sprintf("%s %s as part of %q.", verb, phase.Focus, story.Summary),
			Labels:      labels,
		})
	}
	return story
}

// acceptanceCriteria renders the fixed GIVEN/WHEN/THEN block for a phase.
func acceptanceCriteria(phase Phase) string {
	return strings.Join([]string{
		"GIVEN " + phase.Action + " is complete",
		"WHEN all requirements are met",
		"THEN code is reviewed and tested",
	}, "\n")
}

// epicDescription composes the multi-line epic description. The first line
// is a *bold* heading and the keyword line is a // comment so both render
// with styling downstream.
func epicDescription(area WorkArea, goal string) string {
	display, desc := InfoFor(area.Type)
	keywords := "general implementation"
	if len(area.Keywords) > 0 {
		keywords = strings.Join(area.Keywords, ", ")
	}
	return strings.Join([]string{
		"*" + display + ": " + desc + "*",
		"",
		"Goal: " + goal,
		"",
		"// keywords: " + keywords,
	}, "\n")
}

// truncate cuts s to at most limit runes, trimming any trailing space.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " ")
}
