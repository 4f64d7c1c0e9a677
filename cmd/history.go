package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AKhubcher/TaskManager/internal/config"
	"github.com/AKhubcher/TaskManager/internal/telemetry"
	"github.com/AKhubcher/TaskManager/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the duplicate-suppression history",
	RunE:  runHistoryShow,
}

var historyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the history and stamp a fresh identifier",
	RunE:  runHistoryReset,
}

func init() {
	historyCmd.AddCommand(historyResetCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer closeStore() //nolint:errcheck

	hist, err := store.Load(cmd.Context())
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.History(hist)
	return nil
}

func runHistoryReset(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer closeStore() //nolint:errcheck

	if err := store.Reset(cmd.Context()); err != nil {
		printer.Error(err.Error())
		return err
	}

	emitter := openEmitter(cfg, printer)
	defer emitter.Close()
	emitter.Emit(telemetry.Event{Kind: telemetry.KindHistoryReset}) //nolint:errcheck

	printer.Success("history cleared")
	return nil
}
