package planner

import (
	"regexp"
	"strings"
)

// areaPatterns pairs each detectable area with its detection pattern. The
// slice order is the fixed scan order, which also fixes the order work areas
// appear in the analysis output regardless of match position in the goal.
var areaPatterns = []struct {
	Type    AreaType
	Pattern *regexp.Regexp
}{
	{AreaFrontend, regexp.MustCompile(`(?i)front[ -]?end|\bui\b|user interface|react|vue|angular|\bcss\b|\bhtml\b|dashboard|landing page`)},
	{AreaBackend, regexp.MustCompile(`(?i)back[ -]?end|\bapi\b|server|endpoint|microservice|\bcrud\b|\brest\b|graphql`)},
	{AreaAuth, regexp.MustCompile(`(?i)auth\w*|\blogin\b|log[ -]?in|sign[ -]?up|password|oauth|\bsso\b|session`)},
	{AreaTesting, regexp.MustCompile(`(?i)\btest\w*|\bqa\b|coverage|\be2e\b|end[ -]to[ -]end`)},
	{AreaDeployment, regexp.MustCompile(`(?i)deploy\w*|\bci\b|\bcd\b|docker|kubernetes|pipeline|release|infrastructure|hosting`)},
	{AreaData, regexp.MustCompile(`(?i)database|\bsql\b|data (?:model\w*|pipeline\w*|warehouse\w*)|analytics|migration\w*|\betl\b|schema|storage`)},
	{AreaMobile, regexp.MustCompile(`(?i)mobile|\bios\b|android|app store|react native|flutter`)},
	{AreaDocumentation, regexp.MustCompile(`(?i)document\w*|\bdocs\b|readme|user guide|wiki|changelog`)},
}

// complexAreas is the fixed set of areas whose mere presence raises a low
// goal to medium complexity.
var complexAreas = map[AreaType]bool{
	AreaMobile:     true,
	AreaBackend:    true,
	AreaAuth:       true,
	AreaDeployment: true,
	AreaData:       true,
}

// ExtractKeywords applies a single case-insensitive detection pattern to the
// goal text and returns the distinct lowercased substrings that matched.
// Returns nil when nothing matches. Pure function.
func ExtractKeywords(text string, pattern *regexp.Regexp) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range pattern.FindAllString(text, -1) {
		k := strings.ToLower(m)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// AnalyzeGoal classifies a goal into work areas and a complexity tier. It is
// total: an empty or unclassifiable goal falls back to a single
// implementation area at low complexity.
func AnalyzeGoal(goal string) GoalAnalysis {
	var areas []WorkArea
	for _, ap := range areaPatterns {
		kws := ExtractKeywords(goal, ap.Pattern)
		if len(kws) > 0 {
			areas = append(areas, WorkArea{Type: ap.Type, Keywords: kws})
		}
	}
	detected := len(areas)
	if detected == 0 {
		areas = append(areas, WorkArea{Type: AreaImplementation})
	}

	complexity := ComplexityLow

	// The area-count rule runs before the length and sentence escalations
	// below, so a goal capped to a single area can still come out high from
	// length alone. That is the observed behavior; keep the order.
	switch {
	case detected >= 4:
		complexity = ComplexityHigh
		areas = capAreas(areas, 6)
	case detected >= 2:
		complexity = ComplexityMedium
		areas = capAreas(areas, 2)
	default:
		areas = capAreas(areas, 1)
	}

	words := len(strings.Fields(goal))
	switch {
	case words > 100:
		complexity = ComplexityHigh
	case words > 30:
		if complexity == ComplexityLow {
			complexity = ComplexityMedium
		}
	}

	for _, a := range areas {
		if complexAreas[a.Type] && complexity == ComplexityLow {
			complexity = ComplexityMedium
		}
	}

	sentences := countSentences(goal)
	switch {
	case sentences >= 5:
		complexity = ComplexityHigh
	case sentences >= 3:
		if complexity == ComplexityLow {
			complexity = ComplexityMedium
		}
	}

	return GoalAnalysis{
		WorkAreas:     areas,
		Complexity:    complexity,
		WordCount:     words,
		SentenceCount: sentences,
	}
}

// capAreas drops the tail of the area list beyond max.
func capAreas(areas []WorkArea, max int) []WorkArea {
	if len(areas) > max {
		return areas[:max]
	}
	return areas
}

// countSentences splits the goal on sentence terminators and counts the
// non-empty fragments.
func countSentences(goal string) int {
	frags := strings.FieldsFunc(goal, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	n := 0
	for _, f := range frags {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}
