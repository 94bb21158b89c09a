package config

import (
	"os"
	"path/filepath"
	"testing"

	"taskflow/internal/model"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileIsDefaults(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvToday, "2024-02-15")
	t.Setenv(EnvPageSize, "5")

	body := "log:\n  level: debug\n  format: json\npage_size: 20\nformat: yaml\ntui:\n  glyphs: ascii\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Format != "yaml" || cfg.TUI.Glyphs != "ascii" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.PageSize != 5 {
		t.Fatalf("env should override file page size, got %d", cfg.PageSize)
	}
	if got := model.DateOf(cfg.Clock()()); got != "2024-02-15" {
		t.Fatalf("expected pinned clock, got %s", got)
	}
	// Defaults survive for keys the file doesn't mention.
	if cfg.TUI.StartView != "signin" {
		t.Fatalf("expected default start view, got %q", cfg.TUI.StartView)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad today":  "today: 15/02/2024\n",
		"bad format": "format: xml\n",
		"bad yaml":   "log: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv(EnvDir, dir)
			if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(EnvDir, filepath.Join(t.TempDir(), "nested"))

	want := Default()
	want.SeedFile = "/tmp/seed.yaml"
	want.TUI.Notifications.EmailNotifications = true
	if _, err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestNotificationSettings_Shows(t *testing.T) {
	t.Parallel()

	s := Default().TUI.Notifications
	s.ProjectUpdates = false
	if !s.Shows(model.NotifyTaskAssigned) || s.Shows(model.NotifyProjectUpdate) || !s.Shows(model.NotifyTaskCompleted) {
		t.Fatalf("unexpected visibility: %+v", s)
	}
}
