package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AKhubcher/TaskManager/internal/adf"
)

// HTTPClient talks to a hosted issue tracker over its REST API using basic
// auth (account email + API token). Each method is a single round trip; no
// retries are attempted, since any create failure aborts the remaining plan.
type HTTPClient struct {
	BaseURL  string
	Email    string
	APIToken string

	// HTTP overrides the transport; nil uses a default client with a
	// 30-second timeout.
	HTTP *http.Client
}

// NewHTTPClient builds a client for the tracker at baseURL.
func NewHTTPClient(baseURL, email, apiToken string) *HTTPClient {
	return &HTTPClient{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Email:    email,
		APIToken: apiToken,
	}
}

// issueFields is the wire shape of a create-issue request.
type issueFields struct {
	Project     keyRef      `json:"project"`
	Summary     string      `json:"summary"`
	Description adf.Doc     `json:"description"`
	IssueType   nameRef     `json:"issuetype"`
	Labels      []string    `json:"labels,omitempty"`
	Parent      *keyRef     `json:"parent,omitempty"`
	Assignee    *idRef      `json:"assignee,omitempty"`
	Components  []nameRef   `json:"components,omitempty"`
}

type keyRef struct {
	Key string `json:"key"`
}

type nameRef struct {
	Name string `json:"name"`
}

type idRef struct {
	ID string `json:"id"`
}

// CreateIssue creates one issue and returns its key.
func (c *HTTPClient) CreateIssue(ctx context.Context, issue Issue) (string, error) {
	fields := issueFields{
		Project:     keyRef{Key: issue.ProjectKey},
		Summary:     issue.Summary,
		Description: issue.Description,
		IssueType:   nameRef{Name: issue.TypeName},
		Labels:      issue.Labels,
	}
	if issue.ParentKey != "" {
		fields.Parent = &keyRef{Key: issue.ParentKey}
	}
	if issue.Assignee != "" {
		fields.Assignee = &idRef{ID: issue.Assignee}
	}
	for _, comp := range issue.Components {
		fields.Components = append(fields.Components, nameRef{Name: comp})
	}

	var created struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	body := map[string]any{"fields": fields}
	if err := c.do(ctx, http.MethodPost, "/rest/api/3/issue", body, &created); err != nil {
		return "", fmt.Errorf("creating issue %q: %w", issue.Summary, err)
	}
	return created.Key, nil
}

// IssueTypes returns the issue types configured on a project.
func (c *HTTPClient) IssueTypes(ctx context.Context, projectKey string) ([]IssueType, error) {
	var project struct {
		IssueTypes []IssueType `json:"issueTypes"`
	}
	path := "/rest/api/3/project/" + projectKey
	if err := c.do(ctx, http.MethodGet, path, nil, &project); err != nil {
		return nil, fmt.Errorf("fetching issue types for %q: %w", projectKey, err)
	}
	return project.IssueTypes, nil
}

// AddComment attaches a document-format comment to an issue.
func (c *HTTPClient) AddComment(ctx context.Context, issueKey string, body adf.Doc) error {
	path := "/rest/api/3/issue/" + issueKey + "/comment"
	payload := map[string]any{"body": body}
	if err := c.do(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("commenting on %s: %w", issueKey, err)
	}
	return nil
}

// Validate checks that the tracker is reachable and the credentials work.
func (c *HTTPClient) Validate(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/rest/api/3/myself", nil, nil); err != nil {
		return fmt.Errorf("tracker credentials check failed: %w", err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.SetBasicAuth(c.Email, c.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}
