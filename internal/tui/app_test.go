package tui

import (
	"strings"
	"testing"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func testDB() *store.DB {
	return store.OpenSeed(store.WithClock(func() time.Time {
		return time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	}))
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

func press(m appModel, msgs ...tea.KeyMsg) appModel {
	for _, msg := range msgs {
		mAny, _ := m.Update(msg)
		m = mAny.(appModel)
	}
	return m
}

// signedIn returns a model past the sign-in form, acting as Sarah.
func signedIn(t *testing.T, db *store.DB, opts Options) appModel {
	t.Helper()
	m := newAppModel(db, nil, opts)
	m = press(m, runes("sarah.chen@company.com"), keyTab, runes("secret"), keyEnter)
	if m.view != viewDashboard || m.session == nil {
		t.Fatalf("expected dashboard after sign-in, got view=%v session=%v", m.view, m.session)
	}
	return m
}

func TestSignIn_StartsSessionAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := newAppModel(testDB(), zap.New(core), Options{})
	if m.view != viewSignIn || m.modal == nil {
		t.Fatalf("expected sign-in modal on start, got view=%v", m.view)
	}

	m = press(m, runes("sarah.chen@company.com"), keyTab, runes("secret"), keyEnter)
	if m.view != viewDashboard {
		t.Fatalf("expected dashboard, got %v", m.view)
	}
	if m.session.Name != "sarah.chen" || m.session.ID == "" {
		t.Fatalf("unexpected session: %+v", m.session)
	}
	if m.author() != "1" {
		t.Fatalf("expected session to act as member 1, got %q", m.author())
	}
	if logs.FilterMessage("session started").Len() != 1 {
		t.Fatalf("expected a session log entry")
	}
}

func TestSignIn_InvalidEmailKeepsFormOpen(t *testing.T) {
	m := newAppModel(testDB(), nil, Options{})
	m = press(m, runes("nope"), keyTab, runes("secret"), keyEnter)
	if m.view != viewSignIn || m.session != nil {
		t.Fatalf("expected to stay on sign-in, got %v", m.view)
	}
	if m.modal == nil {
		t.Fatalf("expected sign-in modal to stay open")
	}
	if got := m.modal.errors()["email"]; got != "Please enter a valid email" {
		t.Fatalf("unexpected email error %q", got)
	}
	if f, _ := m.modal.current(); f.Key != "email" {
		t.Fatalf("expected focus back on email, got %q", f.Key)
	}
}

func TestSignUp_CtrlNSwitchesAndEscReturns(t *testing.T) {
	m := newAppModel(testDB(), nil, Options{})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.view != viewSignUp || m.modal == nil {
		t.Fatalf("expected sign-up form, got %v", m.view)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewSignIn || m.modal == nil {
		t.Fatalf("expected sign-in form after esc, got %v", m.view)
	}
}

func TestTaskForm_EmptySubmitKeepsModalOpen(t *testing.T) {
	db := testDB()
	m := signedIn(t, db, Options{})
	m = press(m, runes("4"), runes("n"), keyEnter)
	if m.modal == nil {
		t.Fatalf("expected task modal to stay open")
	}
	errs := m.modal.errors()
	for _, key := range []string{"title", "description", "assignee", "project", "due_date"} {
		if _, ok := errs[key]; !ok {
			t.Fatalf("expected error for %s; got %v", key, errs)
		}
	}
	if db.Tasks.Len() != 5 {
		t.Fatalf("expected no task created, got %d", db.Tasks.Len())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != nil {
		t.Fatalf("expected esc to close the modal")
	}
}

func TestTaskForm_EditStatusSaves(t *testing.T) {
	db := testDB()
	m := signedIn(t, db, Options{})
	m = press(m, runes("4"), runes("j"), runes("j"), runes("e"))
	if m.modal == nil || m.modal.title != "Edit Task" {
		t.Fatalf("expected edit modal")
	}
	// title -> description -> status, then review -> completed.
	m = press(m, keyTab, keyTab, keyRight, keyEnter)
	if m.modal != nil {
		t.Fatalf("expected modal closed after save; errors=%v", m.modal.errors())
	}
	got, _ := db.Tasks.Get("3")
	if got.Status != model.TaskCompleted {
		t.Fatalf("expected task 3 completed, got %q", got.Status)
	}
	if got.Title != "Create Marketing Copy" {
		t.Fatalf("expected other fields kept, got title %q", got.Title)
	}
	if m.flash != "Edit Task: saved" {
		t.Fatalf("unexpected flash %q", m.flash)
	}
}

func TestTasks_StatusFilterCyclesAndResets(t *testing.T) {
	m := signedIn(t, testDB(), Options{})
	m = press(m, runes("4"), runes("f"))
	v := m.screens[viewTasks].(*tasksView)
	if got := v.list.filters.Value(filter.KeyStatus); got != string(model.TaskTodo) {
		t.Fatalf("expected todo after one cycle, got %q", got)
	}
	for _, task := range v.list.filtered() {
		if task.Status != model.TaskTodo {
			t.Fatalf("filter let through %q", task.Status)
		}
	}
	m = press(m, runes("x"))
	if len(v.list.filtered()) != 5 {
		t.Fatalf("expected reset to show all 5 tasks")
	}
	if !strings.Contains(m.View(), "Create Marketing Copy") {
		t.Fatalf("expected task table to list seed tasks")
	}
}

func TestTasks_CommentUsesSessionMember(t *testing.T) {
	db := testDB()
	m := signedIn(t, db, Options{})
	m = press(m, runes("4"), runes("c"))
	if m.prompt == nil {
		t.Fatalf("expected comment prompt")
	}
	m = press(m, runes("Looks good"), keyEnter)
	task, _ := db.Tasks.Get("1")
	last := task.Comments[len(task.Comments)-1]
	if last.Content != "Looks good" || last.AuthorID != "1" {
		t.Fatalf("unexpected comment %+v", last)
	}
}

func TestIssues_DeleteNeedsConfirm(t *testing.T) {
	db := testDB()
	m := signedIn(t, db, Options{})
	m = press(m, runes("7"), runes("d"))
	if m.confirm == nil {
		t.Fatalf("expected confirm prompt")
	}
	m = press(m, runes("n"))
	if m.confirm != nil || db.Issues.Len() != 4 {
		t.Fatalf("expected cancel to keep all issues")
	}
	m = press(m, runes("d"), runes("y"))
	if db.Issues.Len() != 3 {
		t.Fatalf("expected one issue deleted, got %d", db.Issues.Len())
	}
	if m.flash != "Issue deleted" {
		t.Fatalf("unexpected flash %q", m.flash)
	}
}

func TestSchedule_MarkAllReadAndSaveSettings(t *testing.T) {
	db := testDB()
	var saved *config.NotificationSettings
	opts := Options{
		Notifications: config.Default().TUI.Notifications,
		SaveSettings: func(s config.NotificationSettings) error {
			saved = &s
			return nil
		},
	}
	m := signedIn(t, db, opts)
	m = press(m, runes("6"), runes("R"))
	if n := stats.Unread(db.Notifications.All()); n != 0 {
		t.Fatalf("expected all read, %d unread", n)
	}

	m = press(m, runes("o"), keySpace, runes("o"))
	if saved == nil {
		t.Fatalf("expected settings to be saved on close")
	}
	if saved.TaskAssignments {
		t.Fatalf("expected task assignments toggled off")
	}
	v := m.screens[viewSchedule].(*scheduleView)
	for _, n := range v.notes.filtered() {
		if n.Type == model.NotifyTaskAssigned {
			t.Fatalf("expected task-assigned notifications hidden")
		}
	}
}

func TestProgress_RangeCyclesFromWeek(t *testing.T) {
	m := signedIn(t, testDB(), Options{})
	m = press(m, runes("5"))
	v := m.screens[viewProgress].(*progressView)
	if v.rng != filter.RangeWeek {
		t.Fatalf("expected week by default, got %q", v.rng)
	}
	m = press(m, runes("r"), runes("r"))
	if v.rng != filter.RangeQuarter {
		t.Fatalf("expected quarter, got %q", v.rng)
	}
	m = press(m, runes("p"))
	if got := len(v.input(m.db).Projects); got != 1 {
		t.Fatalf("expected progress scoped to one project, got %d", got)
	}
	m = press(m, runes("x"))
	if v.rng != filter.RangeWeek || len(v.input(m.db).Projects) != 4 {
		t.Fatalf("expected reset to week and all projects")
	}
}

func TestView_RendersProjectsAndSignOut(t *testing.T) {
	m := signedIn(t, testDB(), Options{})
	m = press(m, runes("2"))
	out := m.View()
	if !strings.Contains(out, "Website Redesign") {
		t.Fatalf("expected project name in view")
	}
	if !strings.Contains(out, "$270,000") {
		t.Fatalf("expected total budget card")
	}
	m = press(m, runes("L"))
	if m.view != viewSignIn || m.session != nil {
		t.Fatalf("expected sign-out to return to sign-in")
	}
}

func TestParseView_FallsBackToSignIn(t *testing.T) {
	t.Parallel()

	if parseView("Tasks") != viewTasks {
		t.Fatalf("expected case-insensitive view names")
	}
	if parseView("nope") != viewSignIn {
		t.Fatalf("expected unknown view to fall back to sign-in")
	}
}
