package cli

import (
	"taskflow/internal/export"
	"taskflow/internal/format"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <yaml|markdown|sqlite>",
		Short: "Export the current dataset",
		Long: `Export the current dataset.

yaml writes a dataset that --seed can load back, markdown writes a status
report and sqlite writes one table per entity (requires --out).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			opt := export.Options{Format: f, Path: out, Out: cmd.OutOrStdout()}
			if err := export.Run(cmd.Context(), app.db, opt, app.log); err != nil {
				return writeErr(cmd, err)
			}
			if out == "" {
				return nil
			}
			return writeRecord(cmd, app, map[string]string{"format": string(f), "path": out},
				format.KV{{"format", string(f)}, {"path", out}})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout; required for sqlite)")
	return cmd
}
