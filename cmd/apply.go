package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AKhubcher/TaskManager/internal/config"
	"github.com/AKhubcher/TaskManager/internal/history"
	"github.com/AKhubcher/TaskManager/internal/orchestrator"
	"github.com/AKhubcher/TaskManager/internal/planner"
	"github.com/AKhubcher/TaskManager/internal/tracker"
	"github.com/AKhubcher/TaskManager/internal/ui"
)

// generatorName identifies this tool in provenance records.
const generatorName = "taskmanager"

var applyCmd = &cobra.Command{
	Use:   "apply [goal...]",
	Short: "Compile a goal and create its issues in the tracker",
	Args:  cobra.ArbitraryArgs,
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringP("file", "f", "", "read the goal from a file")
	applyCmd.Flags().StringP("project", "p", "", "target project key (overrides config)")
	applyCmd.Flags().Bool("dry-run", false, "print the plan and duplicate decisions without creating anything")
	addContextFlags(applyCmd)
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()
	ctx := cmd.Context()

	goal, err := readGoal(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	project := cfg.Project
	if flag, _ := cmd.Flags().GetString("project"); flag != "" {
		project = flag
	}
	if project == "" {
		printer.Error(orchestrator.ErrMissingProject.Error())
		return orchestrator.ErrMissingProject
	}

	opts := gatherOptions(cmd, cfg.Labels)
	plan := planner.Compile(goal, opts)
	printer.Analysis(plan.Analysis)
	printer.PlanTree(plan)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer closeStore() //nolint:errcheck

	if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
		return dryRun(cmd, plan, store, printer)
	}

	if cfg.Tracker.BaseURL == "" {
		err := fmt.Errorf("tracker.base_url is not configured")
		printer.Error(err.Error())
		return err
	}

	emitter := openEmitter(cfg, printer)
	defer emitter.Close()

	orch := &orchestrator.Orchestrator{
		Tracker:   tracker.NewHTTPClient(cfg.Tracker.BaseURL, cfg.Tracker.Email, cfg.Tracker.APIToken),
		Store:     store,
		Project:   project,
		Generator: generatorName,
		Emitter:   emitter,
	}

	res, err := orch.Run(ctx, plan, opts)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.ApplyResult(res)
	return nil
}

// dryRun reports which nodes would be created and which would be filtered,
// without touching the tracker or writing the history back.
func dryRun(cmd *cobra.Command, plan *planner.Plan, store history.Store, printer *ui.Printer) error {
	hist, err := store.Load(cmd.Context())
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	create, skip := dryRunCounts(plan, hist, func(kind, summary string) {
		printer.Info("would skip duplicate " + kind + ": " + summary)
	})
	printer.Success(fmt.Sprintf("dry run: %d issue(s) would be created, %d duplicate(s) skipped", create, skip))
	return nil
}

// dryRunCounts mirrors the orchestrator's traversal: a duplicate parent
// skips its whole subtree, since the children would have no parent key to
// attach to. onSkip is invoked once per duplicate node heading a skipped
// subtree.
func dryRunCounts(plan *planner.Plan, hist *history.History, onSkip func(kind, summary string)) (create, skip int) {
	for _, e := range plan.Epics {
		if hist.Contains(e.Summary) {
			onSkip("epic", e.Summary)
			skip++
			for _, s := range e.Stories {
				skip += 1 + len(s.Subtasks)
			}
			continue
		}
		create++
		for _, s := range e.Stories {
			if hist.Contains(s.Summary) {
				onSkip("story", s.Summary)
				skip += 1 + len(s.Subtasks)
				continue
			}
			create++
			for _, st := range s.Subtasks {
				if hist.Contains(st.Summary) {
					onSkip("subtask", st.Summary)
					skip++
					continue
				}
				create++
			}
		}
	}
	return create, skip
}
