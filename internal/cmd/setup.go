package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"ghnotifs/internal/config"
)

// SetupCmd writes the settings file through an interactive form.
type SetupCmd struct{}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	refreshSeconds := strconv.Itoa(settings.RefreshSeconds)
	extraTeams := strings.Join(settings.ExtraTeams, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output format").
				Options(huh.NewOptions("console", "html")...).
				Value(&settings.Format),
			huh.NewInput().
				Title("Default output file (empty for stdout)").
				Value(&settings.Output),
			huh.NewInput().
				Title("Refresh interval in seconds").
				Validate(validatePositiveInt).
				Value(&refreshSeconds),
			huh.NewInput().
				Title("Dashboard HTTP listen address").
				Value(&settings.HTTPAddress),
			huh.NewInput().
				Title("Extra team slugs (comma separated, org/slug)").
				Value(&extraTeams),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	settings.RefreshSeconds, _ = strconv.Atoi(refreshSeconds)
	settings.ExtraTeams = splitTeams(extraTeams)

	path, err := config.Save(settings)
	if err != nil {
		return err
	}

	fmt.Printf("Settings written to %s\n", path)
	return nil
}

func validatePositiveInt(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func splitTeams(value string) []string {
	var teams []string
	for _, team := range strings.Split(value, ",") {
		if team = strings.TrimSpace(team); team != "" {
			teams = append(teams, team)
		}
	}
	return teams
}
