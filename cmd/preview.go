package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AKhubcher/TaskManager/internal/config"
	"github.com/AKhubcher/TaskManager/internal/planner"
	"github.com/AKhubcher/TaskManager/internal/tui"
	"github.com/AKhubcher/TaskManager/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [goal...]",
	Short: "Browse a compiled plan in an interactive tree view",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringP("file", "f", "", "read the goal from a file")
	addContextFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	goal, err := readGoal(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	plan := planner.Compile(goal, gatherOptions(cmd, cfg.Labels))
	return tui.Run(plan)
}
