// Package adf renders annotated plain text into the Atlassian document
// format consumed by issue trackers. The input convention is line-oriented:
// blank lines become empty paragraphs, lines starting with // become
// code-styled spans (marker kept), and lines wrapped in single asterisks
// become bold spans.
package adf

import "strings"

// Mark styles a text node (e.g. strong, code).
type Mark struct {
	Type string `json:"type"`
}

// Node is one element of a document tree.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Marks   []Mark `json:"marks,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// Doc is a complete version-1 document.
type Doc struct {
	Version int    `json:"version"`
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

// FromText converts a multi-line annotated string into a document. Every
// input line, including blank ones, produces exactly one paragraph block in
// order; no line is ever dropped.
func FromText(text string) Doc {
	doc := Doc{Version: 1, Type: "doc"}
	for _, line := range strings.Split(text, "\n") {
		doc.Content = append(doc.Content, paragraph(line))
	}
	return doc
}

// paragraph renders a single line.
func paragraph(line string) Node {
	switch {
	case strings.TrimSpace(line) == "":
		return Node{Type: "paragraph"}

	case strings.HasPrefix(line, "//"):
		// The marker stays visible; the whole line is styled as code.
		return textParagraph(line, Mark{Type: "code"})

	case len(line) > 2 && strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*"):
		return textParagraph(line[1:len(line)-1], Mark{Type: "strong"})

	default:
		return Node{Type: "paragraph", Content: []Node{{Type: "text", Text: line}}}
	}
}

func textParagraph(text string, mark Mark) Node {
	return Node{
		Type: "paragraph",
		Content: []Node{{
			Type:  "text",
			Text:  text,
			Marks: []Mark{mark},
		}},
	}
}
