// Package orchestrator drives a compiled plan into the issue tracker:
// sequential parent-before-child creation, duplicate suppression against the
// persisted history, and a provenance comment on the first created epic.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/AKhubcher/TaskManager/internal/adf"
	"github.com/AKhubcher/TaskManager/internal/history"
	"github.com/AKhubcher/TaskManager/internal/planner"
	"github.com/AKhubcher/TaskManager/internal/telemetry"
	"github.com/AKhubcher/TaskManager/internal/tracker"
)

// Orchestrator holds the collaborators for one or more apply invocations.
type Orchestrator struct {
	Tracker   tracker.Client
	Store     history.Store
	Project   string
	Generator string             // names this tool in provenance records
	Emitter   *telemetry.Emitter // nil disables telemetry

	// Now is the clock used for provenance timestamps; nil uses time.Now.
	Now func() time.Time
}

// Result summarizes one apply invocation. An all-duplicates run is a valid
// outcome, distinguishable via NothingCreated, not an error.
type Result struct {
	CreatedEpics    int
	CreatedStories  int
	CreatedSubtasks int
	Skipped         int // nodes admitted by the compiler but filtered as duplicates
	FirstEpicKey    string
}

// Created returns the total number of issues created.
func (r *Result) Created() int {
	return r.CreatedEpics + r.CreatedStories + r.CreatedSubtasks
}

// NothingCreated reports whether every candidate node was filtered as a
// duplicate.
func (r *Result) NothingCreated() bool {
	return r.Created() == 0
}

// Run creates all issues for a plan. Creation is strictly sequential and
// depth-first, parent before child, because each child create needs its
// parent's freshly assigned key. Any failed external call aborts the
// remaining sequence; issues created before the failure are kept, both in
// the tracker and in the saved history.
func (o *Orchestrator) Run(ctx context.Context, plan *planner.Plan, opts planner.Options) (*Result, error) {
	if strings.TrimSpace(plan.Goal) == "" {
		return nil, ErrMissingGoal
	}
	if o.Project == "" {
		return nil, ErrMissingProject
	}

	hist, err := o.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading duplicate history: %w", err)
	}

	types, err := o.Tracker.IssueTypes(ctx, o.Project)
	if err != nil {
		return nil, &OpError{Op: "fetch issue types", Err: err}
	}
	names := tracker.ResolveTypeNames(types)

	o.Emitter.Emit(telemetry.Event{Kind: telemetry.KindApplyStart, Goal: plan.Goal}) //nolint:errcheck

	res := &Result{}
	runErr := o.createPlan(ctx, plan, opts, names, hist, res)

	// The history is written once per invocation, even after an abort, so
	// issues created before the failure are not recreated on retry.
	if err := o.Store.Save(ctx, hist); err != nil {
		if runErr == nil {
			runErr = fmt.Errorf("saving duplicate history: %w", err)
		}
	}

	if runErr != nil {
		o.Emitter.Emit(telemetry.Event{Kind: telemetry.KindApplyFailed, Goal: plan.Goal, Data: runErr.Error()}) //nolint:errcheck
		return res, runErr
	}

	if res.FirstEpicKey != "" {
		prov := Provenance{
			Generator: o.Generator,
			ID:        uuid.NewString(),
			Timestamp: o.now(),
			Goal:      plan.Goal,
			Options:   opts,
			Epics:     res.CreatedEpics,
			Stories:   res.CreatedStories,
			Subtasks:  res.CreatedSubtasks,
		}
		if err := o.Tracker.AddComment(ctx, res.FirstEpicKey, prov.Comment()); err != nil {
			return res, &OpError{Op: "attach provenance comment", Summary: res.FirstEpicKey, Err: err}
		}
	}

	o.Emitter.Emit(telemetry.Event{Kind: telemetry.KindApplyDone, Goal: plan.Goal, Data: res}) //nolint:errcheck
	return res, nil
}

// createPlan is the explicit traversal over the plan tree. It threads each
// freshly assigned parent key down to its children and mutates hist and res
// as it goes. Split out as a plain method so it can be unit-tested against a
// fake tracker client.
func (o *Orchestrator) createPlan(ctx context.Context, plan *planner.Plan, opts planner.Options, names tracker.TypeNames, hist *history.History, res *Result) error {
	for _, epic := range plan.Epics {
		if o.skip(hist, epic.Summary) {
			// No parent key to attach children to; the whole subtree is skipped.
			res.Skipped += 1 + subtreeSize(epic)
			continue
		}

		epicKey, err := o.create(ctx, epic.Summary, epic.Description, epic.Labels,
			epic.Difficulty, epic.EstimatedTime, names.Epic, "", opts)
		if err != nil {
			return &OpError{Op: "create epic", Summary: epic.Summary, Err: err}
		}
		hist.Epics = append(hist.Epics, history.Entry{Summary: epic.Summary, Key: epicKey})
		res.CreatedEpics++
		if res.FirstEpicKey == "" {
			res.FirstEpicKey = epicKey
		}

		for _, story := range epic.Stories {
			if o.skip(hist, story.Summary) {
				res.Skipped += 1 + len(story.Subtasks)
				continue
			}

			storyKey, err := o.create(ctx, story.Summary, storyDescription(story), story.Labels,
				story.Difficulty, story.EstimatedTime, names.Story, epicKey, opts)
			if err != nil {
				return &OpError{Op: "create story", Summary: story.Summary, Err: err}
			}
			hist.Stories = append(hist.Stories, history.Entry{Summary: story.Summary, Key: storyKey, Parent: epicKey})
			res.CreatedStories++

			for _, sub := range story.Subtasks {
				if o.skip(hist, sub.Summary) {
					res.Skipped++
					continue
				}

				subKey, err := o.create(ctx, sub.Summary, sub.Description, sub.Labels,
					sub.Difficulty, sub.EstimatedTime, names.Subtask, storyKey, opts)
				if err != nil {
					return &OpError{Op: "create subtask", Summary: sub.Summary, Err: err}
				}
				hist.Subtasks = append(hist.Subtasks, history.Entry{Summary: sub.Summary, Key: subKey, Parent: storyKey})
				res.CreatedSubtasks++
			}
		}
	}
	return nil
}

// create performs one tracker round trip with the synthetic difficulty and
// time labels appended.
func (o *Orchestrator) create(ctx context.Context, summary, description string, labels []string,
	difficulty planner.Difficulty, estimate, typeName, parentKey string, opts planner.Options) (string, error) {

	issue := tracker.Issue{
		ProjectKey:  o.Project,
		Summary:     summary,
		Description: adf.FromText(description),
		TypeName:    typeName,
		Labels:      syntheticLabels(labels, difficulty, estimate),
		ParentKey:   parentKey,
		Assignee:    opts.Assignee,
		Components:  opts.Components,
	}

	key, err := o.Tracker.CreateIssue(ctx, issue)
	if err != nil {
		return "", err
	}
	o.Emitter.Emit(telemetry.Event{Kind: telemetry.KindIssueCreated, IssueKey: key, Data: summary}) //nolint:errcheck
	return key, nil
}

// skip reports whether a summary is already in the history and emits the
// corresponding telemetry event.
func (o *Orchestrator) skip(hist *history.History, summary string) bool {
	if !hist.Contains(summary) {
		return false
	}
	o.Emitter.Emit(telemetry.Event{Kind: telemetry.KindIssueSkipped, Data: summary}) //nolint:errcheck
	return true
}

// syntheticLabels appends the Difficulty:<value> and Time:<value> labels,
// stripping whitespace from the time value so it stays a single label token.
func syntheticLabels(labels []string, difficulty planner.Difficulty, estimate string) []string {
	out := make([]string, 0, len(labels)+2)
	out = append(out, labels...)
	out = append(out, "Difficulty:"+string(difficulty))
	out = append(out, "Time:"+stripSpace(estimate))
	return out
}

// storyDescription appends the acceptance criteria block to a story's
// description so the GIVEN/WHEN/THEN lines travel with the issue.
func storyDescription(story planner.Story) string {
	if story.AcceptanceCriteria == "" {
		return story.Description
	}
	return story.Description + "\n\n*Acceptance Criteria*\n" + story.AcceptanceCriteria
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func subtreeSize(epic planner.Epic) int {
	n := len(epic.Stories)
	for _, s := range epic.Stories {
		n += len(s.Subtasks)
	}
	return n
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
