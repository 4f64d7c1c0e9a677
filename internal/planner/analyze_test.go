package planner

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeGoal_FallbackToImplementation(t *testing.T) {
	t.Parallel()

	got := AnalyzeGoal("Build me a payment system")
	if len(got.WorkAreas) != 1 {
		t.Fatalf("expected 1 work area, got %d: %+v", len(got.WorkAreas), got.WorkAreas)
	}
	if got.WorkAreas[0].Type != AreaImplementation {
		t.Errorf("expected implementation fallback, got %q", got.WorkAreas[0].Type)
	}
	if len(got.WorkAreas[0].Keywords) != 0 {
		t.Errorf("fallback area should carry no keywords, got %v", got.WorkAreas[0].Keywords)
	}
	if got.Complexity != ComplexityLow {
		t.Errorf("expected low complexity, got %q", got.Complexity)
	}
}

func TestAnalyzeGoal_EmptyGoal(t *testing.T) {
	t.Parallel()

	got := AnalyzeGoal("")
	if len(got.WorkAreas) != 1 || got.WorkAreas[0].Type != AreaImplementation {
		t.Fatalf("empty goal should classify as implementation, got %+v", got.WorkAreas)
	}
	if got.Complexity != ComplexityLow {
		t.Errorf("expected low complexity, got %q", got.Complexity)
	}
	if got.WordCount != 0 || got.SentenceCount != 0 {
		t.Errorf("expected zero counts, got words=%d sentences=%d", got.WordCount, got.SentenceCount)
	}
}

func TestAnalyzeGoal_ScanOrderNotMentionOrder(t *testing.T) {
	t.Parallel()

	// The goal mentions the API before the dashboard; the analysis still
	// lists frontend first because detection runs in a fixed scan order.
	got := AnalyzeGoal("Expose an api behind the dashboard")
	want := []AreaType{AreaFrontend, AreaBackend}

	var types []AreaType
	for _, a := range got.WorkAreas {
		types = append(types, a.Type)
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("area order mismatch (-want +got):\n%s", diff)
	}
	if got.Complexity != ComplexityMedium {
		t.Errorf("two areas should yield medium, got %q", got.Complexity)
	}
}

func TestAnalyzeGoal_ThreeAreasCappedToTwo(t *testing.T) {
	t.Parallel()

	got := AnalyzeGoal("A dashboard, an api, and a login page")
	want := []AreaType{AreaFrontend, AreaBackend}

	var types []AreaType
	for _, a := range got.WorkAreas {
		types = append(types, a.Type)
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("expected cap to first two areas (-want +got):\n%s", diff)
	}
	if got.Complexity != ComplexityMedium {
		t.Errorf("expected medium, got %q", got.Complexity)
	}
}

func TestAnalyzeGoal_FourAreasGoHigh(t *testing.T) {
	t.Parallel()

	got := AnalyzeGoal("Ship the dashboard, the api, the login flow, and the docker setup")
	if len(got.WorkAreas) != 4 {
		t.Fatalf("expected 4 areas, got %d: %+v", len(got.WorkAreas), got.WorkAreas)
	}
	if got.Complexity != ComplexityHigh {
		t.Errorf("four areas should yield high, got %q", got.Complexity)
	}
}

func TestAnalyzeGoal_LongGoalEscalatesCappedSingleArea(t *testing.T) {
	t.Parallel()

	// One detected area caps the list to a single entry before length is
	// considered, but a goal over a hundred words still escalates to high.
	goal := "dashboard " + strings.Repeat("work ", 101)
	got := AnalyzeGoal(goal)

	if len(got.WorkAreas) != 1 || got.WorkAreas[0].Type != AreaFrontend {
		t.Fatalf("expected single frontend area, got %+v", got.WorkAreas)
	}
	if got.WordCount <= 100 {
		t.Fatalf("test goal too short: %d words", got.WordCount)
	}
	if got.Complexity != ComplexityHigh {
		t.Errorf("expected high from word count, got %q", got.Complexity)
	}
}

func TestAnalyzeGoal_ComplexAreaRaisesLowToMedium(t *testing.T) {
	t.Parallel()

	got := AnalyzeGoal("database cleanup")
	if len(got.WorkAreas) != 1 || got.WorkAreas[0].Type != AreaData {
		t.Fatalf("expected single data area, got %+v", got.WorkAreas)
	}
	if got.Complexity != ComplexityMedium {
		t.Errorf("data area should raise low to medium, got %q", got.Complexity)
	}
}

func TestAnalyzeGoal_SentenceCountEscalates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		goal string
		want Complexity
	}{
		{
			name: "three sentences reach medium",
			goal: "Do the first thing. Then the second thing. Then wrap it up.",
			want: ComplexityMedium,
		},
		{
			name: "five sentences reach high",
			goal: "Do this. Then that. Then more. Also this. And finally that.",
			want: ComplexityHigh,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := AnalyzeGoal(tc.goal)
			if got.Complexity != tc.want {
				t.Errorf("AnalyzeGoal(%q).Complexity = %q, want %q", tc.goal, got.Complexity, tc.want)
			}
		})
	}
}

func TestAnalyzeGoal_Deterministic(t *testing.T) {
	t.Parallel()

	goal := "Build the dashboard and api with login, docker deploys, database migrations, and docs. Test everything."
	first := AnalyzeGoal(goal)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, AnalyzeGoal(goal)); diff != "" {
			t.Fatalf("run %d differed (-first +got):\n%s", i, diff)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`(?i)auth\w*|\blogin\b`)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and dedupes",
			text: "Authentication first, then AUTHENTICATION again, then login",
			want: []string{"authentication", "login"},
		},
		{
			name: "no match returns nil",
			text: "nothing relevant here",
			want: nil,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractKeywords(tc.text, pattern)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExtractKeywords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal string
		want int
	}{
		{"", 0},
		{"One plain fragment without a terminator", 1},
		{"First. Second! Third?", 3},
		{"Trailing terminators only... ", 1},
		{"?!.", 0},
	}
	for _, tc := range tests {
		if got := countSentences(tc.goal); got != tc.want {
			t.Errorf("countSentences(%q) = %d, want %d", tc.goal, got, tc.want)
		}
	}
}
