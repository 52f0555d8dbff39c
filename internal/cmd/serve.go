package cmd

import (
	"context"

	"ghnotifs/internal/render"
	"ghnotifs/internal/server"
)

// ServeCmd serves the HTML dashboard over HTTP.
type ServeCmd struct {
	Address string `help:"Listen address (host:port, default from settings)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	address := s.Address
	if address == "" {
		address = cli.Settings().HTTPAddress
	}

	formatter := render.NewHTMLFormatter(nil)
	renderPage := func(ctx context.Context) (string, error) {
		_, notifications, err := cli.Container.Notifications.FetchAll(ctx)
		if err != nil {
			return "", err
		}
		return formatter.Format(notifications)
	}

	return server.NewHTTPServer(address, renderPage).Start()
}
