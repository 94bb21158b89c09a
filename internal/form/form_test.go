package form

import (
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/store"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func testDB() *store.DB {
	return store.OpenSeed(store.WithClock(func() time.Time {
		return time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	}))
}

func validTaskDraft() *TaskDraft {
	return &TaskDraft{
		Title: "Write onboarding guide", Description: "Cover local setup",
		Status: "todo", Priority: "medium", EstimatedHours: "6",
		Assignee: "3", Reporter: "1", Project: "1", DueDate: "2024-03-01",
		Tags: "docs, onboarding",
	}
}

func TestModal_EmptyTaskTitleKeepsModalOpenAndAddsNothing(t *testing.T) {
	t.Parallel()

	db := testDB()
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewModal[*TaskDraft]("task", zap.New(core))

	d := validTaskDraft()
	d.Title = ""
	m.OpenCreate(d)

	committed := false
	ok := m.Submit(db.Directory(), func(Mode, string, *TaskDraft) { committed = true })
	if ok || committed {
		t.Fatalf("expected submit to be blocked")
	}
	if m.Mode() != Creating {
		t.Fatalf("expected modal to stay open, got %s", m.Mode())
	}
	if got := m.Errors()["title"]; got != "Please enter task title" {
		t.Fatalf("unexpected title error %q", got)
	}
	if db.Tasks.Len() != 5 {
		t.Fatalf("expected no task added, got %d", db.Tasks.Len())
	}
	if logs.FilterMessage("form validation failed").Len() != 1 {
		t.Fatalf("expected validation failure to be logged")
	}
}

func TestModal_CreateCommitsAndCloses(t *testing.T) {
	t.Parallel()

	db := testDB()
	m := NewModal[*TaskDraft]("task", nil)
	m.OpenCreate(validTaskDraft())

	var created model.Task
	ok := m.Submit(db.Directory(), func(mode Mode, id string, d *TaskDraft) {
		if mode != Creating || id != "" {
			t.Fatalf("unexpected commit args %s %q", mode, id)
		}
		var task model.Task
		d.Apply(&task)
		created = db.CreateTask(task)
	})
	if !ok || m.Open() {
		t.Fatalf("expected submit to close the modal")
	}
	if created.Title != "Write onboarding guide" || created.ActualHours != nil {
		t.Fatalf("unexpected created task %#v", created)
	}
	if diff := cmp.Diff([]string{"docs", "onboarding"}, created.Tags); diff != "" {
		t.Fatalf("unexpected tags (-want +got):\n%s", diff)
	}
}

func TestModal_EditTask3StatusToCompleted(t *testing.T) {
	t.Parallel()

	db := testDB()
	before, _ := db.Tasks.Get("3")

	m := NewModal[*TaskDraft]("task", nil)
	m.OpenEdit(string(before.ID), TaskDraftOf(before))
	if m.Draft().Status != "review" {
		t.Fatalf("expected draft to start from the stored status")
	}
	m.Set("status", "completed")

	ok := m.Submit(db.Directory(), func(mode Mode, id string, d *TaskDraft) {
		cur, _ := db.Tasks.Get(id)
		d.Apply(&cur)
		db.Tasks.Replace(id, cur)
	})
	if !ok {
		t.Fatalf("expected edit to validate: %v", m.Errors())
	}

	after, _ := db.Tasks.Get("3")
	want := before
	want.Status = model.TaskCompleted
	if diff := cmp.Diff(want, after); diff != "" {
		t.Fatalf("edit changed more than status (-want +got):\n%s", diff)
	}
}

func TestModal_CancelDiscardsDraft(t *testing.T) {
	t.Parallel()

	m := NewModal[*MemberDraft]("member", nil)
	m.OpenCreate(&MemberDraft{Name: "half typed"})
	m.Cancel()
	if m.Open() || m.Draft() != nil || m.Errors() != nil {
		t.Fatalf("expected closed modal with nothing kept")
	}
	if m.Submit(store.Directory{}, func(Mode, string, *MemberDraft) { t.Fatalf("commit on closed modal") }) {
		t.Fatalf("submit on closed modal must be a no-op")
	}
}

func TestValidate_Messages(t *testing.T) {
	t.Parallel()

	dir := testDB().Directory()
	cases := []struct {
		name  string
		draft Draft
		want  FieldErrors
	}{
		{
			name:  "member bad email",
			draft: &MemberDraft{Name: "Ana", Email: "ana-at-example", Phone: "1", Role: "Developer", Department: "Design", Status: "active"},
			want:  FieldErrors{"email": "Please enter a valid email"},
		},
		{
			name:  "member missing fields",
			draft: &MemberDraft{Email: "ana@example.com", Status: "active"},
			want: FieldErrors{
				"name":       "Please enter the full name",
				"phone":      "Please enter the phone number",
				"role":       "Please select a role",
				"department": "Please select a department",
			},
		},
		{
			name: "task non-numeric hours",
			draft: func() Draft {
				d := validTaskDraft()
				d.EstimatedHours = "six"
				d.DueDate = "03/01/2024"
				return d
			}(),
			want: FieldErrors{"estimated_hours": "Hours must be a number", "due_date": "Use YYYY-MM-DD"},
		},
		{
			name:  "project empty",
			draft: &ProjectDraft{Budget: "12k"},
			want: FieldErrors{
				"name":        "Please enter project name",
				"description": "Please enter project description",
				"manager":     "Please select project manager",
				"status":      "Please select status",
				"priority":    "Please select priority",
				"budget":      "Budget must be a whole number",
				"start_date":  "Please select start date",
				"end_date":    "Please select end date",
			},
		},
		{
			name:  "issue valid",
			draft: IssueDraftOf(testDB().Issues.All()[0]),
			want:  nil,
		},
		{
			name:  "sign up mismatch",
			draft: &SignUpDraft{Name: "Ana", Email: "ana@example.com", Password: "correct horse", ConfirmPassword: "battery", Terms: "false"},
			want:  FieldErrors{"confirm_password": "Passwords do not match", "terms": "Please accept the terms"},
		},
		{
			name:  "sign in empty",
			draft: &SignInDraft{},
			want:  FieldErrors{"email": "Please enter your email", "password": "Please enter your password"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.draft, dir)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected errors (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIssueDraft_PatchStampsResolvedThroughStore(t *testing.T) {
	t.Parallel()

	db := testDB()
	iss, _ := db.Issues.Get("1")
	d := IssueDraftOf(iss)
	d.SetValue("status", "resolved")

	if !db.UpdateIssue(iss.ID, d.Patch()) {
		t.Fatalf("expected update")
	}
	got, _ := db.Issues.Get("1")
	if got.Status != model.IssueResolved || got.ResolvedDate != "2024-02-15" {
		t.Fatalf("unexpected issue after edit: status=%s resolved=%s", got.Status, got.ResolvedDate)
	}
	if got.StepsToReproduce != iss.StepsToReproduce || len(got.Comments) != len(iss.Comments) {
		t.Fatalf("edit lost bug details or comments")
	}
}

func TestIssueDraft_BugFieldsOnlyForBugs(t *testing.T) {
	t.Parallel()

	dir := testDB().Directory()
	bug := &IssueDraft{Type: "bug"}
	feat := &IssueDraft{Type: "feature"}
	if len(bug.Fields(dir)) != len(feat.Fields(dir))+4 {
		t.Fatalf("expected four extra bug fields")
	}
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	a := NewSession("", "sarah.chen@company.com", now)
	b := NewSession("Sarah", "sarah.chen@company.com", now)
	if a.Name != "sarah.chen" || b.Name != "Sarah" {
		t.Fatalf("unexpected names %q %q", a.Name, b.Name)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct session ids")
	}
}
