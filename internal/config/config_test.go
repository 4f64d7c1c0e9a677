package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg := Load()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Project", cfg.Project, ""},
		{"TrackerBaseURL", cfg.Tracker.BaseURL, ""},
		{"TrackerEmail", cfg.Tracker.Email, ""},
		{"TrackerAPIToken", cfg.Tracker.APIToken, ""},
		{"HistoryBackend", cfg.History.Backend, "file"},
		{"HistoryPath", cfg.History.Path, ".taskmanager.history.toml"},
		{"Telemetry", cfg.Telemetry, ""},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if len(cfg.Labels) != 0 {
		t.Errorf("Labels = %v, want empty", cfg.Labels)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "project",
			envKey: "TASKMANAGER_PROJECT",
			envVal: "PX",
			field:  func(c Config) any { return c.Project },
			want:   "PX",
		},
		{
			name:   "tracker_base_url",
			envKey: "TASKMANAGER_TRACKER_BASE_URL",
			envVal: "https://example.atlassian.net",
			field:  func(c Config) any { return c.Tracker.BaseURL },
			want:   "https://example.atlassian.net",
		},
		{
			name:   "history_backend",
			envKey: "TASKMANAGER_HISTORY_BACKEND",
			envVal: "sqlite",
			field:  func(c Config) any { return c.History.Backend },
			want:   "sqlite",
		},
		{
			name:   "history_path",
			envKey: "TASKMANAGER_HISTORY_PATH",
			envVal: "/tmp/history.db",
			field:  func(c Config) any { return c.History.Path },
			want:   "/tmp/history.db",
		},
		{
			name:   "telemetry",
			envKey: "TASKMANAGER_TELEMETRY",
			envVal: "/tmp/events.jsonl",
			field:  func(c Config) any { return c.Telemetry },
			want:   "/tmp/events.jsonl",
		},
		{
			name:   "verbose",
			envKey: "TASKMANAGER_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Mirror the CLI's env wiring: TASKMANAGER_* with dots mapped
			// to underscores.
			viper.SetEnvPrefix("TASKMANAGER")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg := Load()
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_FlagBindingsWin(t *testing.T) {
	resetViper()

	viper.Set("project", "FLAG")
	viper.Set("history.backend", "sqlite")

	cfg := Load()
	if cfg.Project != "FLAG" {
		t.Errorf("Project = %q, want FLAG", cfg.Project)
	}
	if cfg.History.Backend != "sqlite" {
		t.Errorf("History.Backend = %q, want sqlite", cfg.History.Backend)
	}
}
