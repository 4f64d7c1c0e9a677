package config

import "github.com/spf13/viper"

// TrackerConfig holds connection settings for the issue tracker.
type TrackerConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Email    string `mapstructure:"email"`
	APIToken string `mapstructure:"api_token"`
}

// HistoryConfig selects and locates the duplicate-history backend.
type HistoryConfig struct {
	Backend string `mapstructure:"backend"` // "file" or "sqlite"
	Path    string `mapstructure:"path"`
}

// Config holds all runtime configuration for a taskmanager session.
// Values are populated from .taskmanager.yaml, TASKMANAGER_* env vars, and
// CLI flags.
type Config struct {
	Project   string        `mapstructure:"project"`
	Labels    []string      `mapstructure:"labels"`
	Tracker   TrackerConfig `mapstructure:"tracker"`
	History   HistoryConfig `mapstructure:"history"`
	Telemetry string        `mapstructure:"telemetry"` // JSONL event file; empty disables
	Verbose   bool          `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("project", "")
	viper.SetDefault("labels", []string{})
	viper.SetDefault("tracker.base_url", "")
	viper.SetDefault("tracker.email", "")
	viper.SetDefault("tracker.api_token", "")
	viper.SetDefault("history.backend", "file")
	viper.SetDefault("history.path", ".taskmanager.history.toml")
	viper.SetDefault("telemetry", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
