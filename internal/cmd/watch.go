package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ghnotifs/internal/logging"
	"ghnotifs/internal/render"
	"ghnotifs/internal/ui"
)

// WatchCmd runs the live terminal dashboard.
type WatchCmd struct {
	Interval int `help:"Refresh interval in seconds (0 = use settings)" default:"0"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	interval := w.Interval
	if interval <= 0 {
		interval = cli.Settings().RefreshSeconds
	}

	logging.Logger.Info("Starting watch TUI", "interval_seconds", interval)

	model := ui.NewWatchModel(newRefreshFunc(cli), time.Duration(interval)*time.Second)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// newRefreshFunc builds the fetch-and-render pass shared by the watch TUI
// and the SSH server.
func newRefreshFunc(cli *CLI) ui.RefreshFunc {
	formatter := render.NewConsoleFormatter(nil)
	return func() (string, int, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		_, notifications, err := cli.Container.Notifications.FetchAll(ctx)
		if err != nil {
			return "", 0, err
		}
		out, err := formatter.Format(notifications)
		if err != nil {
			return "", 0, err
		}
		return out, len(notifications), nil
	}
}
