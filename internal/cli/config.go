package cli

import (
	"errors"
	"fmt"
	"os"

	"taskflow/internal/config"
	"taskflow/internal/format"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigInitCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective config (file, env and flags applied)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := app.cfg
			kv := format.KV{
				{"path", path},
				{"log level", cfg.Log.Level},
				{"log output", cfg.Log.Output},
				{"seed file", cfg.SeedFile},
				{"today", cfg.Today},
				{"page size", fmt.Sprint(cfg.PageSize)},
				{"format", cfg.Format},
				{"theme", cfg.TUI.Theme},
				{"glyphs", cfg.TUI.Glyphs},
				{"start view", cfg.TUI.StartView},
			}
			return writeOut(cmd, app, format.Envelope{Data: dataOrKV(app, cfg, kv), Meta: map[string]string{"path": path}})
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, fmt.Errorf("config already exists at %s (use --force to overwrite)", path))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return writeErr(cmd, err)
			}
			if _, err := config.Save(config.Default()); err != nil {
				return writeErr(cmd, err)
			}
			return writeRecord(cmd, app, map[string]string{"path": path}, format.KV{{"path", path}})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func dataOrKV(app *App, v any, kv format.KV) any {
	if app.Format == "table" {
		return kv
	}
	return v
}
