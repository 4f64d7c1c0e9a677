package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is the release version, overridden at build time via
// -ldflags "-X github.com/AKhubcher/TaskManager/cmd.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskmanager version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionString appends the VCS revision when the binary was built from a
// checkout with version control metadata.
func versionString() string {
	s := "taskmanager " + version
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 12 {
			return s + " (" + setting.Value[:12] + ")"
		}
	}
	return s
}
