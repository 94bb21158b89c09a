package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskflow/internal/store"

	_ "modernc.org/sqlite"
)

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS export_meta (k TEXT PRIMARY KEY, v TEXT NOT NULL);`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		budget INTEGER NOT NULL,
		json TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		assignee_id TEXT NOT NULL,
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		due_date TEXT NOT NULL,
		json TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);`,
	`CREATE TABLE IF NOT EXISTS issues (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		severity TEXT NOT NULL,
		json TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		department TEXT NOT NULL,
		status TEXT NOT NULL,
		json TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		json TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		read INTEGER NOT NULL,
		created_at_unixms INTEGER NOT NULL,
		json TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS comments (
		id TEXT NOT NULL,
		entity_kind TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		created_at_unixms INTEGER NOT NULL,
		content TEXT NOT NULL,
		PRIMARY KEY (entity_kind, entity_id, id)
	);`,
}

var tables = []string{"projects", "tasks", "issues", "members", "events", "notifications", "comments", "export_meta"}

// WriteSQLite writes ds into the SQLite database at path, replacing whatever a
// previous export left there.
func WriteSQLite(ctx context.Context, path string, ds store.Dataset) error {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, st := range schema {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO export_meta(k, v) VALUES(?, ?)`,
		"exported_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	for _, p := range ds.Projects {
		raw, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO projects(id, name, status, priority, budget, json) VALUES(?, ?, ?, ?, ?, ?)`,
			string(p.ID), p.Name, string(p.Status), string(p.Priority), p.Budget, string(raw)); err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
	}
	for _, t := range ds.Tasks {
		raw, err := json.Marshal(t)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO tasks(id, project_id, assignee_id, status, priority, due_date, json) VALUES(?, ?, ?, ?, ?, ?, ?)`,
			string(t.ID), string(t.ProjectID), string(t.AssigneeID), string(t.Status), string(t.Priority), string(t.DueDate), string(raw)); err != nil {
			return fmt.Errorf("task %s: %w", t.ID, err)
		}
		for _, c := range t.Comments {
			if _, err := tx.ExecContext(ctx, `INSERT INTO comments(id, entity_kind, entity_id, author_id, created_at_unixms, content) VALUES(?, ?, ?, ?, ?, ?)`,
				string(c.ID), "task", string(t.ID), string(c.AuthorID), c.Timestamp.UnixMilli(), c.Content); err != nil {
				return err
			}
		}
	}
	for _, i := range ds.Issues {
		raw, err := json.Marshal(i)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO issues(id, project_id, type, status, severity, json) VALUES(?, ?, ?, ?, ?, ?)`,
			string(i.ID), string(i.ProjectID), string(i.Type), string(i.Status), string(i.Severity), string(raw)); err != nil {
			return fmt.Errorf("issue %s: %w", i.ID, err)
		}
		for _, c := range i.Comments {
			if _, err := tx.ExecContext(ctx, `INSERT INTO comments(id, entity_kind, entity_id, author_id, created_at_unixms, content) VALUES(?, ?, ?, ?, ?, ?)`,
				string(c.ID), "issue", string(i.ID), string(c.AuthorID), c.Timestamp.UnixMilli(), c.Content); err != nil {
				return err
			}
		}
	}
	for _, m := range ds.Members {
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO members(id, name, email, department, status, json) VALUES(?, ?, ?, ?, ?, ?)`,
			string(m.ID), m.Name, m.Email, m.Department, string(m.Status), string(raw)); err != nil {
			return fmt.Errorf("member %s: %w", m.ID, err)
		}
	}
	for _, e := range ds.Events {
		raw, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO events(id, type, date, json) VALUES(?, ?, ?, ?)`,
			string(e.ID), string(e.Type), string(e.Date), string(raw)); err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
	}
	for _, n := range ds.Notifications {
		raw, err := json.Marshal(n)
		if err != nil {
			return err
		}
		read := 0
		if n.Read {
			read = 1
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO notifications(id, type, read, created_at_unixms, json) VALUES(?, ?, ?, ?, ?)`,
			string(n.ID), string(n.Type), read, n.Timestamp.UnixMilli(), string(raw)); err != nil {
			return fmt.Errorf("notification %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}
