package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"ghnotifs/internal/logging"
	"ghnotifs/internal/render"
)

// ShowCmd runs one fetch-and-render pass.
type ShowCmd struct {
	Console bool   `help:"Force ANSI console output" short:"c" xor:"format"`
	HTML    bool   `help:"Render an HTML dashboard page instead" short:"H" xor:"format"`
	Output  string `help:"Write output to a file instead of stdout" short:"o" type:"path"`
}

// Run executes the show command
func (s *ShowCmd) Run(cli *CLI) error {
	formatter := s.formatter(cli)

	logging.Logger.Info("Fetching notifications")
	_, notifications, err := cli.Container.Notifications.FetchAll(context.Background())
	if err != nil {
		return err
	}
	logging.Logger.Info("Fetched notifications", "count", len(notifications))

	out, err := formatter.Format(notifications)
	if err != nil {
		return err
	}

	output := s.Output
	if output == "" {
		output = cli.Settings().Output
	}
	if output == "" {
		fmt.Println(out)
		return nil
	}

	if err := os.WriteFile(output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%s: written to %s\n", time.Now().Format(time.RFC3339), output)
	return nil
}

// formatter picks the output format: flag > settings > console.
func (s *ShowCmd) formatter(cli *CLI) render.Formatter {
	html := cli.Settings().Format == "html"
	if s.Console {
		html = false
	}
	if s.HTML {
		html = true
	}
	if html {
		return render.NewHTMLFormatter(nil)
	}
	return render.NewConsoleFormatter(nil)
}
