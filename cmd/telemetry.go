package cmd

import (
	"context"

	"github.com/AKhubcher/TaskManager/internal/config"
	"github.com/AKhubcher/TaskManager/internal/history"
	"github.com/AKhubcher/TaskManager/internal/telemetry"
	"github.com/AKhubcher/TaskManager/internal/ui"
)

// openEmitter creates the telemetry emitter configured for this session, or
// nil (a valid no-op emitter) when telemetry is disabled or unavailable.
func openEmitter(cfg config.Config, printer *ui.Printer) *telemetry.Emitter {
	if cfg.Telemetry == "" {
		return nil
	}
	emitter, err := telemetry.NewEmitter(cfg.Telemetry)
	if err != nil {
		printer.Warn("telemetry disabled: " + err.Error())
		return nil
	}
	return emitter
}

// openStore builds the configured duplicate-history store. The returned
// cleanup func must be called when done.
func openStore(ctx context.Context, cfg config.Config) (history.Store, func() error, error) {
	if cfg.History.Backend == "sqlite" {
		store, err := history.NewSQLiteStore(ctx, cfg.History.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	return history.NewFileStore(cfg.History.Path), func() error { return nil }, nil
}
