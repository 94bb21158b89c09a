// Package config loads ~/.taskflow/config.yaml and applies TASKFLOW_* overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"taskflow/internal/logging"
	"taskflow/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	EnvDir      = "TASKFLOW_CONFIG_DIR"
	EnvLogLevel = "TASKFLOW_LOG_LEVEL"
	EnvLogFile  = "TASKFLOW_LOG_FILE"
	EnvSeed     = "TASKFLOW_SEED"
	EnvToday    = "TASKFLOW_TODAY"
	EnvFormat   = "TASKFLOW_FORMAT"
	EnvTheme    = "TASKFLOW_THEME"
	EnvPageSize = "TASKFLOW_PAGE_SIZE"
)

type Config struct {
	Log logging.Config `yaml:"log" json:"log"`

	// SeedFile replaces the built-in dataset with a YAML one.
	SeedFile string `yaml:"seed_file,omitempty" json:"seedFile,omitempty"`
	// Today pins the session clock (YYYY-MM-DD), mostly for demos and screenshots.
	Today    string `yaml:"today,omitempty" json:"today,omitempty"`
	PageSize int    `yaml:"page_size" json:"pageSize"`
	Format   string `yaml:"format" json:"format"`

	TUI TUI `yaml:"tui" json:"tui"`
}

type TUI struct {
	Theme     string `yaml:"theme" json:"theme"`   // auto, light, dark
	Glyphs    string `yaml:"glyphs" json:"glyphs"` // unicode, ascii
	StartView string `yaml:"start_view" json:"startView"`

	Notifications NotificationSettings `yaml:"notifications" json:"notifications"`
}

// NotificationSettings toggles which notification kinds the schedule view shows.
type NotificationSettings struct {
	TaskAssignments    bool `yaml:"task_assignments" json:"taskAssignments"`
	DeadlineReminders  bool `yaml:"deadline_reminders" json:"deadlineReminders"`
	ProjectUpdates     bool `yaml:"project_updates" json:"projectUpdates"`
	MeetingReminders   bool `yaml:"meeting_reminders" json:"meetingReminders"`
	EmailNotifications bool `yaml:"email_notifications" json:"emailNotifications"`
}

// Shows reports whether a notification of type t passes the settings.
// Completed-task notifications are always shown.
func (s NotificationSettings) Shows(t model.NotificationType) bool {
	switch t {
	case model.NotifyTaskAssigned:
		return s.TaskAssignments
	case model.NotifyDeadlineReminder:
		return s.DeadlineReminders
	case model.NotifyProjectUpdate:
		return s.ProjectUpdates
	case model.NotifyMeetingReminder:
		return s.MeetingReminders
	}
	return true
}

func Default() Config {
	return Config{
		Log:      logging.DefaultConfig(),
		PageSize: 10,
		Format:   "table",
		TUI: TUI{
			Theme:     "auto",
			Glyphs:    "unicode",
			StartView: "signin",
			Notifications: NotificationSettings{
				TaskAssignments:   true,
				DeadlineReminders: true,
				ProjectUpdates:    true,
				MeetingReminders:  true,
			},
		},
	}
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.taskflow).
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskflow"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file (a missing file means defaults) and then applies
// environment overrides.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.Output = v
	}
	if v, ok := lookup(EnvSeed); ok {
		c.SeedFile = v
	}
	if v, ok := lookup(EnvToday); ok {
		c.Today = v
	}
	if v, ok := lookup(EnvFormat); ok {
		c.Format = v
	}
	if v, ok := lookup(EnvTheme); ok {
		c.TUI.Theme = v
	}
	if v, ok := lookup(EnvPageSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.PageSize = n
	}
	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (c Config) Validate() error {
	if c.Today != "" {
		if _, err := time.Parse(model.DateLayout, c.Today); err != nil {
			return fmt.Errorf("config today %q: want YYYY-MM-DD", c.Today)
		}
	}
	if c.PageSize < 0 {
		return fmt.Errorf("config page_size must not be negative (got %d)", c.PageSize)
	}
	switch c.Format {
	case "", "table", "json", "yaml":
	default:
		return fmt.Errorf("config format %q: want table, json or yaml", c.Format)
	}
	return nil
}

// Clock returns the session clock: the pinned day (at the current wall-clock
// time of day) when Today is set, otherwise time.Now.
func (c Config) Clock() func() time.Time {
	if c.Today == "" {
		return time.Now
	}
	day, err := time.Parse(model.DateLayout, c.Today)
	if err != nil {
		return time.Now
	}
	return func() time.Time {
		now := time.Now().UTC()
		return time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	}
}

// Save writes cfg to the config path atomically.
func Save(cfg Config) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, "config.yaml.*.tmp")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("save config: %w", err)
	}
	return path, nil
}
