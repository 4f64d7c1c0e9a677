package tracker

import (
	"context"

	"github.com/AKhubcher/TaskManager/internal/adf"
)

// Client defines the interface for interacting with the issue tracker.
// *HTTPClient satisfies this interface; tests use a fake.
type Client interface {
	CreateIssue(ctx context.Context, issue Issue) (string, error)
	IssueTypes(ctx context.Context, projectKey string) ([]IssueType, error)
	AddComment(ctx context.Context, issueKey string, body adf.Doc) error
	Validate(ctx context.Context) error
}

// Issue holds everything a single create call carries.
type Issue struct {
	ProjectKey  string
	Summary     string
	Description adf.Doc
	TypeName    string
	Labels      []string
	ParentKey   string // empty for epics
	Assignee    string // opaque account identifier, passed through unchanged
	Components  []string
}

// IssueType is one configured type on a project.
type IssueType struct {
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}
