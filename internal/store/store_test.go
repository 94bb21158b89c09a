package store

import (
	"os"
	"path/filepath"
	"testing"

	"taskflow/internal/model"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func newTestDB(t *testing.T) (*DB, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	return OpenSeed(WithClock(fixedClock()), WithLogger(zap.New(core))), logs
}

func TestSeed_Counts(t *testing.T) {
	t.Parallel()

	ds := Seed()
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"projects", len(ds.Projects), 4},
		{"tasks", len(ds.Tasks), 5},
		{"issues", len(ds.Issues), 4},
		{"members", len(ds.Members), 4},
		{"events", len(ds.Events), 5},
		{"notifications", len(ds.Notifications), 5},
		{"deadlines", len(ds.Deadlines), 4},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, tc.got)
		}
	}
}

func TestDB_SetTaskStatusLeavesOtherFieldsUnchanged(t *testing.T) {
	t.Parallel()

	db, _ := newTestDB(t)
	before, ok := db.Tasks.Get("3")
	if !ok {
		t.Fatalf("seed task 3 missing")
	}
	if before.Status != model.TaskReview {
		t.Fatalf("expected seed task 3 in review, got %q", before.Status)
	}

	if !db.SetTaskStatus("3", model.TaskCompleted) {
		t.Fatalf("expected status update to succeed")
	}
	after, _ := db.Tasks.Get("3")

	want := before
	want.Status = model.TaskCompleted
	if diff := cmp.Diff(want, after); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDB_UpdateMissingIDIsLoggedNoop(t *testing.T) {
	t.Parallel()

	db, logs := newTestDB(t)
	if db.UpdateTask("does-not-exist", TaskPatch{Title: Ptr("x")}) {
		t.Fatalf("expected false for missing task")
	}
	if got := logs.FilterMessage("update ignored: no such record").Len(); got != 1 {
		t.Fatalf("expected one ignored-update log entry, got %d", got)
	}
	if db.Tasks.Len() != 5 {
		t.Fatalf("expected no tasks added, got %d", db.Tasks.Len())
	}
}

func TestDB_CreateDefaults(t *testing.T) {
	t.Parallel()

	db, _ := newTestDB(t)

	task := db.CreateTask(model.Task{Title: "Plan sprint", Comments: []model.Comment{{Content: "stale"}}})
	if task.CreatedDate != "2024-02-15" {
		t.Fatalf("expected createdDate today, got %q", task.CreatedDate)
	}
	if len(task.Comments) != 0 {
		t.Fatalf("expected no comments on a new task, got %d", len(task.Comments))
	}

	p := db.CreateProject(model.Project{Name: "Docs site", Progress: 80, Tasks: model.TaskCounts{Total: 3}})
	if p.Progress != 0 || p.Tasks != (model.TaskCounts{}) {
		t.Fatalf("expected zero progress/counters, got %d %+v", p.Progress, p.Tasks)
	}

	m := db.CreateMember(model.TeamMember{Name: "Priya", TasksCompleted: 9})
	if m.JoinDate != "2024-02-15" || m.TasksCompleted != 0 || m.Status != model.MemberActive {
		t.Fatalf("unexpected member defaults: %#v", m)
	}

	i := db.CreateIssue(model.Issue{Title: "Crash on save", ResolvedDate: "2020-01-01"})
	if i.CreatedDate != "2024-02-15" || i.UpdatedDate != "2024-02-15" || !i.ResolvedDate.IsZero() {
		t.Fatalf("unexpected issue dates: %#v", i)
	}
}

func TestDB_SetIssueStatusStampsDates(t *testing.T) {
	t.Parallel()

	db, _ := newTestDB(t)
	if !db.SetIssueStatus("1", model.IssueResolved) {
		t.Fatalf("expected update to succeed")
	}
	got, _ := db.Issues.Get("1")
	if got.ResolvedDate != "2024-02-15" || got.UpdatedDate != "2024-02-15" {
		t.Fatalf("expected resolved+updated stamped today, got %q / %q", got.ResolvedDate, got.UpdatedDate)
	}

	db.SetIssueStatus("1", model.IssueOpen)
	got, _ = db.Issues.Get("1")
	if !got.ResolvedDate.IsZero() {
		t.Fatalf("expected resolved date cleared on reopen, got %q", got.ResolvedDate)
	}

	// Closing an already resolved issue keeps its resolution date.
	db.SetIssueStatus("3", model.IssueClosed)
	got, _ = db.Issues.Get("3")
	if got.ResolvedDate != "2024-02-09" {
		t.Fatalf("expected original resolved date kept, got %q", got.ResolvedDate)
	}
}

func TestDB_AddComments(t *testing.T) {
	t.Parallel()

	db, _ := newTestDB(t)

	if _, ok := db.AddTaskComment("2", "1", "   "); ok {
		t.Fatalf("blank comment must be rejected")
	}
	c, ok := db.AddTaskComment("2", "1", "Start with the token refresh flow")
	if !ok {
		t.Fatalf("expected comment to be added")
	}
	task, _ := db.Tasks.Get("2")
	if len(task.Comments) != 1 || task.Comments[0].ID != c.ID || task.Comments[0].Kind != model.CommentNote {
		t.Fatalf("unexpected comments: %#v", task.Comments)
	}

	if _, ok := db.AddIssueComment("404", "1", "hello"); ok {
		t.Fatalf("expected comment on missing issue to fail")
	}
	if _, ok := db.AddIssueComment("4", "3", "Images are now webp"); !ok {
		t.Fatalf("expected issue comment to be added")
	}
	iss, _ := db.Issues.Get("4")
	if len(iss.Comments) != 1 || iss.UpdatedDate != "2024-02-15" {
		t.Fatalf("unexpected issue after comment: %#v", iss)
	}
}

func TestDB_Notifications(t *testing.T) {
	t.Parallel()

	db, _ := newTestDB(t)
	if !db.MarkNotificationRead("1") {
		t.Fatalf("expected mark read to succeed")
	}
	if got := db.MarkAllNotificationsRead(); got != 1 {
		t.Fatalf("expected 1 remaining unread to flip, got %d", got)
	}
	if got := db.MarkAllNotificationsRead(); got != 0 {
		t.Fatalf("expected nothing left to mark, got %d", got)
	}
}

func TestDirectory_NamesFollowRenames(t *testing.T) {
	t.Parallel()

	db, _ := newTestDB(t)
	task, _ := db.Tasks.Get("1")
	if got := db.Directory().ProjectName(task.ProjectID); got != "Website Redesign" {
		t.Fatalf("unexpected project name %q", got)
	}

	db.UpdateProject("1", ProjectPatch{Name: Ptr("Website Refresh")})
	if got := db.Directory().ProjectName(task.ProjectID); got != "Website Refresh" {
		t.Fatalf("expected rename to flow through, got %q", got)
	}

	db.DeleteMember(task.AssigneeID)
	if got := db.Directory().MemberName(task.AssigneeID); got != UnknownMember {
		t.Fatalf("expected unknown member fallback, got %q", got)
	}
}

func TestDirectory_Resolve(t *testing.T) {
	t.Parallel()

	d := OpenSeed(WithClock(fixedClock())).Directory()
	cases := []struct {
		ref  string
		want model.MemberID
		ok   bool
	}{
		{"2", "2", true},
		{"mike johnson", "2", true},
		{" Emma Davis ", "3", true},
		{"nobody", "", false},
	}
	for _, tc := range cases {
		got, ok := d.ResolveMember(tc.ref)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ResolveMember(%q) = %q,%v; want %q,%v", tc.ref, got, ok, tc.want, tc.ok)
		}
	}
	if id, ok := d.ResolveProject("Mobile App Development"); !ok || id != "2" {
		t.Fatalf("ResolveProject by name = %q,%v", id, ok)
	}
}

func TestLoadDataset_ReadsYAMLOverride(t *testing.T) {
	t.Parallel()

	ds := Seed()
	ds.Projects = ds.Projects[:1]
	b, err := yaml.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	db := Open(got, WithClock(fixedClock()))
	if db.Projects.Len() != 1 || db.Tasks.Len() != 5 {
		t.Fatalf("unexpected sizes: projects=%d tasks=%d", db.Projects.Len(), db.Tasks.Len())
	}

	if _, err := LoadDataset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDB_EditTaskAppliesDraftInPlace(t *testing.T) {
	t.Parallel()

	db, logs := newTestDB(t)
	ok := db.EditTask("3", func(x *model.Task) {
		x.Status = model.TaskCompleted
		x.Tags = []string{"copy"}
	})
	if !ok {
		t.Fatalf("expected edit to succeed")
	}
	got, _ := db.Tasks.Get("3")
	if got.Status != model.TaskCompleted || len(got.Tags) != 1 || got.Title != "Create Marketing Copy" {
		t.Fatalf("unexpected task after edit: %+v", got)
	}

	if db.EditMember("missing", func(*model.TeamMember) {}) {
		t.Fatalf("expected false for missing member")
	}
	if got := logs.FilterMessage("update ignored: no such record").Len(); got != 1 {
		t.Fatalf("expected one ignored-update log entry, got %d", got)
	}
}
