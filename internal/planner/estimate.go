package planner

import (
	"fmt"
	"math"
	"strings"
)

// difficultyIndicators are the complexity-indicator terms scanned for when
// rating a node. Each term counts at most once.
var difficultyIndicators = []string{
	"integration",
	"migration",
	"refactor",
	"architecture",
	"security",
	"authentication",
	"deployment",
	"database",
}

// timeFactor is one textual flag contributing a fixed increment to the
// estimate multiplier when its term appears in the node text.
type timeFactor struct {
	Term      string
	Increment float64
}

// timeFactors are the substring-matched multiplier increments. Together with
// the research and bug-fix flags below they form the full factor set.
var timeFactors = []timeFactor{
	{"migration", 0.5},
	{"refactor", 0.5},
	{"architecture", 0.5},
	{"integration", 0.4},
	{"database", 0.4},
	{"security", 0.4},
	{"authentication", 0.4},
	{"deployment", 0.3},
	{"testing", 0.3},
	{"performance", 0.3},
	{"api", 0.2},
	{"ui", 0.2},
	{"cache", 0.2},
	{"documentation", 0.1},
}

// researchTerms trigger a single +0.15 increment.
var researchTerms = []string{"research", "investigate", "explore"}

// bugfixTerms trigger a single -0.2 decrement, but only on Easy nodes.
var bugfixTerms = []string{"bugfix", "bug fix", "hotfix"}

// childCountIncrement is added to the multiplier per direct child.
const childCountIncrement = 0.1

// baseHours is the fixed estimate baseline by node kind and difficulty.
// Epic bands approximate 2, 5, and 10 forty-hour weeks.
var baseHours = map[NodeKind]map[Difficulty]float64{
	KindEpic:    {DifficultyEasy: 80, DifficultyMedium: 200, DifficultyHard: 400},
	KindStory:   {DifficultyEasy: 3, DifficultyMedium: 12, DifficultyHard: 28},
	KindSubtask: {DifficultyEasy: 0.75, DifficultyMedium: 3, DifficultyHard: 6},
}

// CalculateDifficulty rates a node from its text and direct child count.
// Monotonic in both inputs: more children or more indicator hits never lower
// the tier.
func CalculateDifficulty(summary, description string, childCount int) Difficulty {
	text := strings.ToLower(summary + " " + description)
	hits := 0
	for _, term := range difficultyIndicators {
		if strings.Contains(text, term) {
			hits++
		}
	}
	switch {
	case childCount >= 4 || hits >= 3:
		return DifficultyHard
	case childCount >= 2 || hits >= 1:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// CalculateEstimatedTime produces the human-readable effort estimate for a
// node. Deterministic and pure.
func CalculateEstimatedTime(difficulty Difficulty, kind NodeKind, summary, description string, childCount int) string {
	text := strings.ToLower(summary + " " + description)

	multiplier := 1.0
	for _, f := range timeFactors {
		if strings.Contains(text, f.Term) {
			multiplier += f.Increment
		}
	}
	if containsAny(text, researchTerms) {
		multiplier += 0.15
	}
	if difficulty == DifficultyEasy && containsAny(text, bugfixTerms) {
		multiplier -= 0.2
	}
	multiplier += childCountIncrement * float64(childCount)

	hours := baseHours[kind][difficulty] * multiplier

	switch kind {
	case KindEpic:
		return formatEpicTime(hours)
	case KindStory:
		return formatStoryTime(hours)
	default:
		return formatSubtaskTime(hours)
	}
}

// formatEpicTime rounds up to whole 40-hour weeks and phrases them in bands.
func formatEpicTime(hours float64) string {
	weeks := int(math.Ceil(hours / 40))
	switch {
	case weeks <= 1:
		return "1 week"
	case weeks == 2:
		return "1-2 weeks"
	case weeks <= 4:
		return "2-4 weeks"
	case weeks <= 8:
		return "4-8 weeks"
	case weeks <= 12:
		return "8-12 weeks"
	default:
		return fmt.Sprintf("%d weeks", weeks)
	}
}

// formatStoryTime renders minutes below an hour, hours up to a working day,
// then days and weeks (8-hour days, 5-day weeks).
func formatStoryTime(hours float64) string {
	if hours < 1 {
		return pluralize(int(math.Round(hours*60)), "minute")
	}
	if hours <= 8 {
		return pluralize(int(math.Round(hours)), "hour")
	}
	days := int(math.Ceil(hours / 8))
	if days <= 5 {
		return pluralize(days, "day")
	}
	return pluralize(int(math.Ceil(float64(days)/5)), "week")
}

// formatSubtaskTime renders minutes below an hour, half-hour-rounded hours
// below two, whole hours up to a working day, and a flat phrase beyond.
func formatSubtaskTime(hours float64) string {
	if hours < 1 {
		minutes := int(math.Round(hours*60/15)) * 15
		if minutes == 0 {
			minutes = 15
		}
		return pluralize(minutes, "minute")
	}
	if hours < 2 {
		half := math.Round(hours*2) / 2
		if half == math.Trunc(half) {
			return pluralize(int(half), "hour")
		}
		return fmt.Sprintf("%.1f hours", half)
	}
	if hours <= 8 {
		return pluralize(int(math.Round(hours)), "hour")
	}
	return "more than 1 day"
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
