package planner

import (
	"strings"
	"testing"
)

func TestCalculateDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		summary    string
		childCount int
		want       Difficulty
	}{
		{"plain leaf", "Polish visual details", 0, DifficultyEasy},
		{"one indicator", "Plan the database layout", 0, DifficultyMedium},
		{"two children", "Small umbrella", 2, DifficultyMedium},
		{"three indicators", "Security review of the authentication migration", 0, DifficultyHard},
		{"four children", "Wide umbrella", 4, DifficultyHard},
		{"indicator casing ignored", "DATABASE Refactor", 0, DifficultyMedium},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateDifficulty(tc.summary, "", tc.childCount); got != tc.want {
				t.Errorf("CalculateDifficulty(%q, %d) = %q, want %q", tc.summary, tc.childCount, got, tc.want)
			}
		})
	}
}

func TestCalculateDifficulty_Monotonic(t *testing.T) {
	t.Parallel()

	rank := map[Difficulty]int{DifficultyEasy: 0, DifficultyMedium: 1, DifficultyHard: 2}

	// Growing the child count while holding the text fixed never lowers
	// the rating.
	prev := CalculateDifficulty("fixed summary", "fixed description", 0)
	for children := 1; children <= 6; children++ {
		got := CalculateDifficulty("fixed summary", "fixed description", children)
		if rank[got] < rank[prev] {
			t.Fatalf("rating dropped from %q to %q at %d children", prev, got, children)
		}
		prev = got
	}

	// Accumulating indicator terms never lowers it either.
	terms := []string{"integration", "migration", "refactor", "security"}
	prev = CalculateDifficulty("", "", 0)
	for i := range terms {
		text := strings.Join(terms[:i+1], " ")
		got := CalculateDifficulty(text, "", 0)
		if rank[got] < rank[prev] {
			t.Fatalf("rating dropped from %q to %q with terms %q", prev, got, text)
		}
		prev = got
	}
}

func TestCalculateDifficulty_RepeatedTermCountsOnce(t *testing.T) {
	t.Parallel()

	got := CalculateDifficulty("database database database", "", 0)
	if got != DifficultyMedium {
		t.Errorf("repeated term should count once: got %q, want %q", got, DifficultyMedium)
	}
}

func TestCalculateEstimatedTime_StoryScenario(t *testing.T) {
	t.Parallel()

	summary := "Implement authentication and database migration"
	difficulty := CalculateDifficulty(summary, "", 4)
	if difficulty != DifficultyHard {
		t.Fatalf("expected Hard, got %q", difficulty)
	}

	// 28h base with migration, database, authentication, and four children
	// lands at 75.6h, which is 10 working days, phrased in weeks.
	got := CalculateEstimatedTime(difficulty, KindStory, summary, "", 4)
	if got != "2 weeks" {
		t.Errorf("estimate = %q, want %q", got, "2 weeks")
	}
}

func TestCalculateEstimatedTime_BugfixDiscountOnlyWhenEasy(t *testing.T) {
	t.Parallel()

	easy := CalculateEstimatedTime(DifficultyEasy, KindSubtask, "bugfix typo", "", 0)
	if easy != "30 minutes" {
		t.Errorf("easy bugfix estimate = %q, want %q", easy, "30 minutes")
	}

	plain := CalculateEstimatedTime(DifficultyEasy, KindSubtask, "small typo", "", 0)
	if plain != "45 minutes" {
		t.Errorf("plain easy estimate = %q, want %q", plain, "45 minutes")
	}
}

func TestFormatEpicTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours float64
		want  string
	}{
		{30, "1 week"},
		{80, "1-2 weeks"},
		{160, "2-4 weeks"},
		{200, "4-8 weeks"},
		{460, "8-12 weeks"},
		{600, "15 weeks"},
	}
	for _, tc := range tests {
		if got := formatEpicTime(tc.hours); got != tc.want {
			t.Errorf("formatEpicTime(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestFormatStoryTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours float64
		want  string
	}{
		{0.5, "30 minutes"},
		{1, "1 hour"},
		{3, "3 hours"},
		{8, "8 hours"},
		{20, "3 days"},
		{90, "3 weeks"},
	}
	for _, tc := range tests {
		if got := formatStoryTime(tc.hours); got != tc.want {
			t.Errorf("formatStoryTime(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestFormatSubtaskTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours float64
		want  string
	}{
		{0.1, "15 minutes"},
		{0.75, "45 minutes"},
		{1.6, "1.5 hours"},
		{1.1, "1 hour"},
		{5, "5 hours"},
		{9, "more than 1 day"},
	}
	for _, tc := range tests {
		if got := formatSubtaskTime(tc.hours); got != tc.want {
			t.Errorf("formatSubtaskTime(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	if got := pluralize(1, "day"); got != "1 day" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(3, "day"); got != "3 days" {
		t.Errorf("pluralize(3) = %q", got)
	}
}
