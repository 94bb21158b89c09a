package export

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"taskflow/internal/store"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func testDB() *store.DB {
	return store.OpenSeed(store.WithClock(func() time.Time {
		return time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	}))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"yaml": YAML, "md": Markdown, "markdown": Markdown, "sqlite": SQLite} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Fatalf("expected error for csv")
	}
}

func TestRun_YAMLRoundTripsThroughLoadDataset(t *testing.T) {
	t.Parallel()

	db := testDB()
	db.SetTaskStatus("3", "completed")
	path := filepath.Join(t.TempDir(), "out", "taskflow.yaml")

	if err := Run(context.Background(), db, Options{Format: YAML, Path: path}, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	ds, err := store.LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(ds.Tasks) != 5 || ds.Tasks[2].Status != "completed" {
		t.Fatalf("export did not capture session edits: %+v", ds.Tasks[2])
	}
}

func TestRun_MarkdownToWriter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	var buf bytes.Buffer
	if err := Run(context.Background(), testDB(), Options{Format: Markdown, Out: &buf}, zap.New(core)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TaskFlow report",
		"Total budget $270,000.",
		"| Create Marketing Copy | review | medium | Emma Davis | Marketing Campaign | Feb 10, 2024 (overdue) | 100% |",
		"**User Authentication Implementation** (Feb 13, 2024): overdue by 2 days",
		"**Design Homepage Layout** (Feb 15, 2024): due today",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
	if logs.FilterMessage("export written").Len() != 1 {
		t.Fatalf("expected export to be logged")
	}
}

func TestRun_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "taskflow.sqlite")
	db := testDB()

	if err := Run(ctx, db, Options{Format: SQLite}, nil); err == nil {
		t.Fatalf("expected sqlite without path to fail")
	}
	// Exporting twice replaces the previous contents.
	for range 2 {
		if err := Run(ctx, db, Options{Format: SQLite, Path: path}, nil); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected sqlite file: %v", err)
	}

	sdb, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sdb.Close()

	counts := map[string]int{"projects": 4, "tasks": 5, "issues": 4, "members": 4, "events": 5, "notifications": 5, "comments": 6}
	for table, want := range counts {
		var n int
		if err := sdb.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+table).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != want {
			t.Fatalf("%s: expected %d rows, got %d", table, want, n)
		}
	}
	var budget int64
	if err := sdb.QueryRowContext(ctx, `SELECT SUM(budget) FROM projects`).Scan(&budget); err != nil {
		t.Fatalf("sum: %v", err)
	}
	if budget != 270000 {
		t.Fatalf("expected total budget 270000, got %d", budget)
	}
}
