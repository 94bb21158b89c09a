package cli

import (
	"fmt"
	"os"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/format"
	"taskflow/internal/logging"
	"taskflow/internal/store"
	"taskflow/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Format   string
	Pretty   bool
	Page     int
	PageSize int
	Today    string
	Seed     string

	cfg config.Config
	log *zap.Logger
	db  *store.DB
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskflow",
		Short:        "TaskFlow project management dashboard (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  taskflow

  # Scriptable, read-only views over the same data
  taskflow tasks list --status in-progress --assignee "Emma Davis"
  taskflow progress --project "Website Redesign" --range month
  taskflow export markdown --out report.md
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr(config.EnvFormat, ""), "Output format (json|yaml|table); default from config")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().IntVar(&app.Page, "page", 1, "Page number for list output")
	cmd.PersistentFlags().IntVar(&app.PageSize, "page-size", 0, "Records per page (default from config)")
	cmd.PersistentFlags().StringVar(&app.Today, "today", "", "Pin today's date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&app.Seed, "seed", "", "YAML dataset to load instead of the built-in demo data")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newIssuesCmd(app))
	cmd.AddCommand(newTeamCmd(app))
	cmd.AddCommand(newScheduleCmd(app))
	cmd.AddCommand(newProgressCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// load resolves config, the logger and the session DB. Flags win over the
// config file, which wins over defaults.
func (app *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	if app.Format != "" {
		cfg.Format = app.Format
	}
	if app.PageSize > 0 {
		cfg.PageSize = app.PageSize
	}
	if app.Today != "" {
		cfg.Today = app.Today
	}
	if app.Seed != "" {
		cfg.SeedFile = app.Seed
	}
	if err := cfg.Validate(); err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	app.Format = cfg.Format

	// The bare command runs the TUI, which must not log to the terminal.
	newLogger := logging.New
	if cmd.Parent() == nil {
		newLogger = logging.ForTUI
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.log = log

	opts := []store.Option{store.WithClock(cfg.Clock()), store.WithLogger(log)}
	if cfg.SeedFile == "" {
		app.db = store.OpenSeed(opts...)
		return nil
	}
	ds, err := store.LoadDataset(cfg.SeedFile)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.db = store.Open(ds, opts...)
	return nil
}

func runTUI(app *App) error {
	return tui.Run(app.db, app.cfg, app.log)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
