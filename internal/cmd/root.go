package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"

	"ghnotifs/internal/config"
	"ghnotifs/internal/logging"
)

// Version is the release version, overridable at build time.
var Version = "dev"

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool            `help:"Enable debug logging to file" short:"d"`
	DebugFile   string          `help:"Custom path for debug log file"`
	MaxLogFiles int             `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Show     ShowCmd     `cmd:"" help:"Fetch and print pending PR review notifications (default)" default:"1"`
	Watch    WatchCmd    `cmd:"watch" help:"Live terminal dashboard, auto-refreshing"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the HTML dashboard over HTTP"`
	ServeSSH ServeSSHCmd `cmd:"serve-ssh" help:"Serve the live dashboard over SSH"`
	Setup    SetupCmd    `cmd:"setup" help:"Write the settings file interactively"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// AfterApply initializes logging and wires dependencies after CLI parsing
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		fmt.Printf("Debug mode enabled. Logs: %s\n", logFilePath)
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	c.settings = settings

	c.Container = NewContainer(settings)
	return nil
}

// Settings returns the loaded settings.
func (c *CLI) Settings() *config.Settings {
	return c.settings
}
