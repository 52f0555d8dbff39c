package cmd

import (
	adaptergithub "ghnotifs/internal/adapters/github"
	"ghnotifs/internal/config"
	"ghnotifs/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Notifications *services.NotificationService
	Settings      *config.Settings
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) *Container {
	githubClient := adaptergithub.NewClient()

	return &Container{
		Notifications: services.NewNotificationService(githubClient, settings.ExtraTeams),
		Settings:      settings,
	}
}
