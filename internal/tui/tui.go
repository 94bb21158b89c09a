package tui

import (
	"taskflow/internal/config"
	"taskflow/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the full-screen dashboard on db. Notification toggles made in the
// schedule view are written back to the config file.
func Run(db *store.DB, cfg config.Config, log *zap.Logger) error {
	applyColorProfilePreference()
	applyThemePreference(cfg.TUI.Theme)
	applyGlyphPreference(cfg.TUI.Glyphs)

	opts := Options{
		StartView:     cfg.TUI.StartView,
		PageSize:      cfg.PageSize,
		Notifications: cfg.TUI.Notifications,
		SaveSettings: func(s config.NotificationSettings) error {
			cfg.TUI.Notifications = s
			path, err := config.Save(cfg)
			if err == nil {
				log.Info("notification settings saved", zap.String("path", path))
			}
			return err
		},
	}
	m := newAppModel(db, log, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
