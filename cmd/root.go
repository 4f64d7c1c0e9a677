package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AKhubcher/TaskManager/internal/planner"
)

var rootCmd = &cobra.Command{
	Use:   "taskmanager",
	Short: "Goal-to-plan compiler and issue sync",
	Long: "TaskManager turns a short natural-language goal into a hierarchical work-breakdown\n" +
		"plan (epics, stories, subtasks) with difficulty ratings and time estimates, and\n" +
		"syncs the plan to an issue tracker with duplicate suppression.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .taskmanager.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".taskmanager")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TASKMANAGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// readGoal resolves the goal text from --file or positional args.
func readGoal(cmd *cobra.Command, args []string) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading goal file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no goal given: pass it as arguments or via --file")
	}
	return strings.Join(args, " "), nil
}

// gatherOptions merges config-level labels with per-invocation flags.
func gatherOptions(cmd *cobra.Command, configLabels []string) planner.Options {
	labels, _ := cmd.Flags().GetStringSlice("label")
	components, _ := cmd.Flags().GetStringSlice("component")
	assignee, _ := cmd.Flags().GetString("assignee")
	return planner.Options{
		Labels:     append(append([]string{}, configLabels...), labels...),
		Components: components,
		Assignee:   assignee,
	}
}

// addContextFlags registers the shared context-option flags.
func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("label", "l", nil, "label merged into every generated issue")
	cmd.Flags().StringSlice("component", nil, "component passed through to the tracker")
	cmd.Flags().StringP("assignee", "a", "", "assignee account id passed through to the tracker")
}
