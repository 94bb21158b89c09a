// Package export writes a session's current dataset out as YAML, a Markdown
// report or a SQLite database. Exports are one-way: nothing reads them back.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"taskflow/internal/store"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	SQLite   Format = "sqlite"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case YAML, Markdown, SQLite:
		return Format(s), nil
	case "md":
		return Markdown, nil
	}
	return "", fmt.Errorf("unknown export format %q (want yaml, markdown or sqlite)", s)
}

type Options struct {
	Format Format
	// Path is required for sqlite; yaml and markdown write to Out when Path is empty.
	Path string
	Out  io.Writer
}

// Run exports db according to opt.
func Run(ctx context.Context, db *store.DB, opt Options, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	ds := db.Snapshot()

	var err error
	switch opt.Format {
	case SQLite:
		if opt.Path == "" {
			return fmt.Errorf("sqlite export needs an output path")
		}
		err = WriteSQLite(ctx, opt.Path, ds)
	case YAML, Markdown:
		err = withOutput(opt, func(w io.Writer) error {
			if opt.Format == YAML {
				return WriteYAML(w, ds)
			}
			_, err := io.WriteString(w, RenderMarkdown(ds, db.Directory(), db.Now()))
			return err
		})
	default:
		return fmt.Errorf("unknown export format %q", opt.Format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", opt.Format, err)
	}
	log.Info("export written",
		zap.String("format", string(opt.Format)),
		zap.String("path", opt.Path),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func withOutput(opt Options, fn func(io.Writer) error) error {
	if opt.Path == "" {
		if opt.Out == nil {
			return fmt.Errorf("no output")
		}
		return fn(opt.Out)
	}
	if err := os.MkdirAll(filepath.Dir(opt.Path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(opt.Path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func WriteYAML(w io.Writer, ds store.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return err
	}
	return enc.Close()
}
