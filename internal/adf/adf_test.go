package adf

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromText_OneParagraphPerLine(t *testing.T) {
	t.Parallel()

	text := "*Heading*\n\nGoal: ship it\n\n// keywords: api, login"
	doc := FromText(text)

	if doc.Version != 1 || doc.Type != "doc" {
		t.Errorf("doc header = version %d type %q", doc.Version, doc.Type)
	}
	if want := len(strings.Split(text, "\n")); len(doc.Content) != want {
		t.Fatalf("expected %d blocks, got %d", want, len(doc.Content))
	}
	for i, n := range doc.Content {
		if n.Type != "paragraph" {
			t.Errorf("block %d type = %q, want paragraph", i, n.Type)
		}
	}
}

func TestFromText_LineStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Node
	}{
		{
			name: "blank line becomes empty paragraph",
			line: "   ",
			want: Node{Type: "paragraph"},
		},
		{
			name: "comment line keeps marker and gets code mark",
			line: "// keywords: api",
			want: Node{Type: "paragraph", Content: []Node{
				{Type: "text", Text: "// keywords: api", Marks: []Mark{{Type: "code"}}},
			}},
		},
		{
			name: "starred line strips markers and gets strong mark",
			line: "*Backend: server-side services*",
			want: Node{Type: "paragraph", Content: []Node{
				{Type: "text", Text: "Backend: server-side services", Marks: []Mark{{Type: "strong"}}},
			}},
		},
		{
			name: "bare double star is too short for strong",
			line: "**",
			want: Node{Type: "paragraph", Content: []Node{{Type: "text", Text: "**"}}},
		},
		{
			name: "lone star is plain text",
			line: "*",
			want: Node{Type: "paragraph", Content: []Node{{Type: "text", Text: "*"}}},
		},
		{
			name: "plain line",
			line: "Goal: ship it",
			want: Node{Type: "paragraph", Content: []Node{{Type: "text", Text: "Goal: ship it"}}},
		},
		{
			name: "interior stars are not emphasis",
			line: "a * b * c",
			want: Node{Type: "paragraph", Content: []Node{{Type: "text", Text: "a * b * c"}}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := FromText(tc.line)
			if len(doc.Content) != 1 {
				t.Fatalf("expected 1 block, got %d", len(doc.Content))
			}
			if diff := cmp.Diff(tc.want, doc.Content[0]); diff != "" {
				t.Errorf("node mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDoc_JSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(FromText("hello"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["version"] != float64(1) {
		t.Errorf("version = %v, want 1", decoded["version"])
	}
	if decoded["type"] != "doc" {
		t.Errorf("type = %v, want doc", decoded["type"])
	}
	if strings.Contains(string(data), `"marks"`) {
		t.Errorf("unmarked text should omit the marks field: %s", data)
	}
}

func TestFromText_EmptyInput(t *testing.T) {
	t.Parallel()

	doc := FromText("")
	if len(doc.Content) != 1 {
		t.Fatalf("empty input should still yield one block, got %d", len(doc.Content))
	}
	if diff := cmp.Diff(Node{Type: "paragraph"}, doc.Content[0]); diff != "" {
		t.Errorf("node mismatch (-want +got):\n%s", diff)
	}
}
