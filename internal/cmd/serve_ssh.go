package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ghnotifs/internal/server"
	"ghnotifs/internal/ui"
)

// ServeSSHCmd serves the live dashboard TUI over SSH.
type ServeSSHCmd struct {
	Host string `help:"Listen host (default from settings)"`
	Port string `help:"Listen port (default from settings)"`
}

// Run executes the serve-ssh command
func (s *ServeSSHCmd) Run(cli *CLI) error {
	host := s.Host
	if host == "" {
		host = cli.Settings().SSHHost
	}
	port := s.Port
	if port == "" {
		port = cli.Settings().SSHPort
	}

	interval := time.Duration(cli.Settings().RefreshSeconds) * time.Second
	newModel := func() tea.Model {
		return ui.NewWatchModel(newRefreshFunc(cli), interval)
	}

	sshServer, err := server.NewSSHServer(host, port, newModel)
	if err != nil {
		return err
	}
	return sshServer.Start()
}
