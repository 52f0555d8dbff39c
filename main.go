package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"ghnotifs/internal/cmd"
	"ghnotifs/internal/domain"
)

func main() {
	// Parse CLI arguments with Kong
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("ghnotifs"),
		kong.Description("Pending GitHub pull request review notifications, in your terminal or browser"),
		kong.UsageOnError(),
		kong.Vars{"version": cmd.Version},
	)

	// Execute the selected command
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", time.Now().Format(time.RFC3339), err)

		// A transport failure carries the gh exit code; propagate it.
		var transportErr *domain.TransportError
		if errors.As(err, &transportErr) && transportErr.ExitCode > 0 {
			os.Exit(transportErr.ExitCode)
		}
		os.Exit(1)
	}
}
