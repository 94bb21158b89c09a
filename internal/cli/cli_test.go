package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskflow/internal/config"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// mustEnv runs a json command pinned to the seed data's "today" and returns
// the decoded envelope.
func mustEnv(t *testing.T, args ...string) map[string]any {
	t.Helper()
	args = append([]string{"--format", "json", "--today", "2024-02-15"}, args...)
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: taskflow %v\nerr: %v\nstderr:\n%s", args, err, stderr)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s", err, stdout)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected data key; got %v", env)
	}
	return env
}

func ids(t *testing.T, env map[string]any) []string {
	t.Helper()
	rows, ok := env["data"].([]any)
	if !ok {
		t.Fatalf("expected data list; got %T", env["data"])
	}
	var out []string
	for _, r := range rows {
		out = append(out, r.(map[string]any)["id"].(string))
	}
	return out
}

func TestTasksList_FiltersByStatusAndAssigneeName(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	env := mustEnv(t, "tasks", "list", "--assignee", "Emma Davis")
	if got := strings.Join(ids(t, env), ","); got != "1,3" {
		t.Fatalf("expected Emma's tasks 1,3; got %s", got)
	}
	meta := env["meta"].(map[string]any)
	if meta["total"] != float64(2) || meta["filter"] != "assignee=3" {
		t.Fatalf("unexpected meta %v", meta)
	}

	env = mustEnv(t, "tasks", "list", "--status", "review")
	if got := strings.Join(ids(t, env), ","); got != "3" {
		t.Fatalf("expected only task 3 in review; got %s", got)
	}
}

func TestTasksList_Pagination(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	env := mustEnv(t, "tasks", "list", "--page-size", "2", "--page", "3")
	if got := ids(t, env); len(got) != 1 || got[0] != "5" {
		t.Fatalf("expected last page to hold task 5; got %v", got)
	}
	meta := env["meta"].(map[string]any)
	if meta["page"] != float64(3) || meta["pages"] != float64(3) || meta["total"] != float64(5) {
		t.Fatalf("unexpected meta %v", meta)
	}
}

func TestTasksList_InvalidFilterFails(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	_, stderr, err := runCLI(t, []string{"tasks", "list", "--status", "bogus"})
	var ife invalidFilterError
	if !errors.As(err, &ife) {
		t.Fatalf("expected invalidFilterError, got %v", err)
	}
	if !strings.Contains(string(stderr), `invalid --status "bogus"`) {
		t.Fatalf("expected error on stderr; got %q", stderr)
	}

	_, _, err = runCLI(t, []string{"tasks", "list", "--assignee", "Nobody"})
	var nf notFoundError
	if !errors.As(err, &nf) || nf.kind != "member" {
		t.Fatalf("expected member notFoundError, got %v", err)
	}
}

func TestProjectsShow_ByNameAndMissing(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	env := mustEnv(t, "projects", "show", "website redesign")
	data := env["data"].(map[string]any)
	if data["id"] != "1" || data["budget"] != float64(75000) {
		t.Fatalf("unexpected project %v", data)
	}

	_, _, err := runCLI(t, []string{"projects", "show", "99"})
	var nf notFoundError
	if !errors.As(err, &nf) || nf.kind != "project" {
		t.Fatalf("expected project notFoundError, got %v", err)
	}
}

func TestProgress_ScopedToProject(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	env := mustEnv(t, "progress", "--project", "Website Redesign", "--range", "all")
	data := env["data"].(map[string]any)
	if data["project"] != "Website Redesign" || data["range"] != "all" {
		t.Fatalf("unexpected scope %v", data)
	}
	if n := len(data["projects"].([]any)); n != 1 {
		t.Fatalf("expected one project, got %d", n)
	}
	critical := data["critical"].([]any)
	if len(critical) != 1 || critical[0].(map[string]any)["title"] != "Design Homepage Layout" {
		t.Fatalf("expected the due-today deadline as the only alert; got %v", critical)
	}
	if n := len(data["timeline"].([]any)); n != 1 {
		t.Fatalf("expected one upcoming deadline, got %d", n)
	}

	_, _, err := runCLI(t, []string{"progress", "--range", "decade"})
	var ife invalidFilterError
	if !errors.As(err, &ife) || ife.flag != "range" {
		t.Fatalf("expected range invalidFilterError, got %v", err)
	}
}

func TestDashboardAndNotifications(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	env := mustEnv(t, "dashboard")
	data := env["data"].(map[string]any)
	if data["teamMembers"] != float64(4) || data["unreadNotifications"] != float64(2) {
		t.Fatalf("unexpected dashboard %v", data)
	}

	env = mustEnv(t, "schedule", "notifications", "--unread")
	if got := strings.Join(ids(t, env), ","); got != "1,2" {
		t.Fatalf("expected unread notifications newest first; got %s", got)
	}
}

func TestTableFormat(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	stdout, _, err := runCLI(t, []string{"--format", "table", "--today", "2024-02-15", "tasks", "list"})
	if err != nil {
		t.Fatalf("tasks list: %v", err)
	}
	out := string(stdout)
	for _, want := range []string{"TITLE", "Create Marketing Copy", "2024-02-10 (overdue)", "page 1/1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestExport(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	stdout, _, err := runCLI(t, []string{"--today", "2024-02-15", "export", "markdown"})
	if err != nil {
		t.Fatalf("export markdown: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# TaskFlow report") {
		t.Fatalf("unexpected markdown:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"export", "sqlite"}); err == nil {
		t.Fatalf("expected sqlite export without --out to fail")
	}

	path := filepath.Join(t.TempDir(), "data.yaml")
	env := mustEnv(t, "export", "yaml", "--out", path)
	if env["data"].(map[string]any)["path"] != path {
		t.Fatalf("unexpected export result %v", env)
	}
	// The export loads back as a seed.
	env = mustEnv(t, "--seed", path, "projects", "stats")
	if env["data"].(map[string]any)["total"] != float64(4) {
		t.Fatalf("expected seeded stats from export; got %v", env["data"])
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)

	mustEnv(t, "config", "init")
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "init"}); err == nil {
		t.Fatalf("expected second init to refuse overwriting")
	}
	mustEnv(t, "config", "init", "--force")

	env := mustEnv(t, "config", "show")
	data := env["data"].(map[string]any)
	if data["pageSize"] != float64(10) || data["today"] != "2024-02-15" {
		t.Fatalf("unexpected effective config %v", data)
	}
}

func TestDocs(t *testing.T) {
	t.Setenv(config.EnvDir, t.TempDir())

	env := mustEnv(t, "docs")
	topics := env["data"].(map[string]any)["topics"].([]any)
	if len(topics) == 0 {
		t.Fatalf("expected topics")
	}

	stdout, _, err := runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil || !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("expected raw keys topic, err=%v out=%q", err, stdout)
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}
