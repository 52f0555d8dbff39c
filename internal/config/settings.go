package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults applied when the settings file is absent or partial.
const (
	DefaultFormat         = "console"
	DefaultRefreshSeconds = 12
	DefaultHTTPAddress    = "127.0.0.1:8907"
	DefaultSSHHost        = "127.0.0.1"
	DefaultSSHPort        = "23234"
)

// Settings holds the persisted configuration from ~/.ghnotifs/config.yaml.
// Precedence at use sites is CLI flag > settings > default.
type Settings struct {
	Format         string   // console or html
	Output         string   // default output file path, empty for stdout
	RefreshSeconds int      // watch/dashboard refresh interval
	HTTPAddress    string   // serve listen address
	SSHHost        string   // serve-ssh listen host
	SSHPort        string   // serve-ssh listen port
	ExtraTeams     []string // org-qualified team slugs merged into the viewer identity
}

// Dir returns the configuration directory, creating nothing.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ghnotifs"), nil
}

// Load reads the settings file, falling back to defaults when it is absent.
func Load() (*Settings, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return loadFrom(dir)
}

func loadFrom(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("GHNOTIFS")
	v.AutomaticEnv()

	v.SetDefault("format", DefaultFormat)
	v.SetDefault("output", "")
	v.SetDefault("refresh_seconds", DefaultRefreshSeconds)
	v.SetDefault("http_address", DefaultHTTPAddress)
	v.SetDefault("ssh_host", DefaultSSHHost)
	v.SetDefault("ssh_port", DefaultSSHPort)
	v.SetDefault("extra_teams", []string{})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	return &Settings{
		Format:         v.GetString("format"),
		Output:         v.GetString("output"),
		RefreshSeconds: v.GetInt("refresh_seconds"),
		HTTPAddress:    v.GetString("http_address"),
		SSHHost:        v.GetString("ssh_host"),
		SSHPort:        v.GetString("ssh_port"),
		ExtraTeams:     v.GetStringSlice("extra_teams"),
	}, nil
}

// Save writes the settings file, creating the config directory if needed.
// Returns the path written.
func Save(s *Settings) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return saveTo(dir, s)
}

func saveTo(dir string, s *Settings) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("format", s.Format)
	v.Set("output", s.Output)
	v.Set("refresh_seconds", s.RefreshSeconds)
	v.Set("http_address", s.HTTPAddress)
	v.Set("ssh_host", s.SSHHost)
	v.Set("ssh_port", s.SSHPort)
	v.Set("extra_teams", s.ExtraTeams)

	path := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write settings: %w", err)
	}
	return path, nil
}
