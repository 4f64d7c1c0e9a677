package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AKhubcher/TaskManager/internal/adf"
	"github.com/AKhubcher/TaskManager/internal/config"
	"github.com/AKhubcher/TaskManager/internal/planner"
	"github.com/AKhubcher/TaskManager/internal/telemetry"
	"github.com/AKhubcher/TaskManager/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan [goal...]",
	Short: "Compile a goal into a work-breakdown plan",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringP("file", "f", "", "read the goal from a file")
	planCmd.Flags().Bool("json", false, "print the plan as JSON with rendered descriptions")
	planCmd.Flags().Bool("watch", false, "recompile whenever the goal file changes (requires --file)")
	addContextFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	goal, err := readGoal(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	opts := gatherOptions(cmd, cfg.Labels)
	asJSON, _ := cmd.Flags().GetBool("json")

	emitter := openEmitter(cfg, printer)
	defer emitter.Close()

	show := func(goal string) {
		emitter.Emit(telemetry.Event{Kind: telemetry.KindCompileStart, Goal: goal}) //nolint:errcheck
		plan := planner.Compile(goal, opts)
		emitter.Emit(telemetry.Event{Kind: telemetry.KindCompileDone, Goal: goal, Data: map[string]int{
			"epics": len(plan.Epics), "stories": plan.StoryCount(), "subtasks": plan.SubtaskCount(),
		}}) //nolint:errcheck

		if asJSON {
			printPlanJSON(plan)
			return
		}
		printer.Analysis(plan.Analysis)
		printer.PlanTree(plan)
	}

	show(goal)

	if watch, _ := cmd.Flags().GetBool("watch"); !watch {
		return nil
	}
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return fmt.Errorf("--watch requires --file")
	}
	return watchGoal(cmd, path, printer, show)
}

// watchGoal recompiles the plan every time the goal file changes, until
// interrupted.
func watchGoal(cmd *cobra.Command, path string, printer *ui.Printer, show func(string)) error {
	watcher, err := planner.NewGoalWatcher(path)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Info("watching " + path + " (ctrl-c to stop)")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Changes:
			goal, err := readGoal(cmd, nil)
			if err != nil {
				printer.Warn(err.Error())
				continue
			}
			show(goal)
		}
	}
}

// planJSON is the plan export shape: the compiled tree plus each node's
// description rendered to the document format.
type planJSON struct {
	Goal     string               `json:"goal"`
	Analysis planner.GoalAnalysis `json:"analysis"`
	Epics    []nodeJSON           `json:"epics"`
}

type nodeJSON struct {
	Summary            string     `json:"summary"`
	Description        string     `json:"description"`
	DescriptionDoc     adf.Doc    `json:"descriptionDoc"`
	AcceptanceCriteria string     `json:"acceptanceCriteria,omitempty"`
	Labels             []string   `json:"labels"`
	Difficulty         string     `json:"difficulty"`
	EstimatedTime      string     `json:"estimatedTime"`
	Children           []nodeJSON `json:"children,omitempty"`
}

func printPlanJSON(plan *planner.Plan) {
	out := planJSON{Goal: plan.Goal, Analysis: plan.Analysis}
	for _, e := range plan.Epics {
		epic := nodeJSON{
			Summary:        e.Summary,
			Description:    e.Description,
			DescriptionDoc: adf.FromText(e.Description),
			Labels:         e.Labels,
			Difficulty:     string(e.Difficulty),
			EstimatedTime:  e.EstimatedTime,
		}
		for _, s := range e.Stories {
			story := nodeJSON{
				Summary:            s.Summary,
				Description:        s.Description,
				DescriptionDoc:     adf.FromText(s.Description),
				AcceptanceCriteria: s.AcceptanceCriteria,
				Labels:             s.Labels,
				Difficulty:         string(s.Difficulty),
				EstimatedTime:      s.EstimatedTime,
			}
			for _, st := range s.Subtasks {
				story.Children = append(story.Children, nodeJSON{
					Summary:        st.Summary,
					Description:    st.Description,
					DescriptionDoc: adf.FromText(st.Description),
					Labels:         st.Labels,
					Difficulty:     string(st.Difficulty),
					EstimatedTime:  st.EstimatedTime,
				})
			}
			epic.Children = append(epic.Children, story)
		}
		out.Epics = append(out.Epics, epic)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
