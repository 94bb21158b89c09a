package stats

import (
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/store"

	"github.com/google/go-cmp/cmp"
)

var today = time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)

func TestProjects_SeedPanel(t *testing.T) {
	t.Parallel()

	got := Projects(store.Seed().Projects)
	want := ProjectStats{Total: 4, InProgress: 2, Completed: 0, Budget: 270000, BudgetLabel: "$270,000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestProjects_MatchesManualCount(t *testing.T) {
	t.Parallel()

	ps := store.Seed().Projects
	manual := map[model.ProjectStatus]int{}
	for _, p := range ps {
		manual[p.Status]++
	}
	got := Projects(ps)
	if got.InProgress != manual[model.ProjectInProgress] || got.Completed != manual[model.ProjectCompleted] {
		t.Fatalf("stats %+v disagree with manual count %v", got, manual)
	}
}

func TestMoney(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{0: "$0", 999: "$999", 1000: "$1,000", 270000: "$270,000", -1500: "-$1,500"}
	for in, want := range cases {
		if got := Money(in); got != want {
			t.Fatalf("Money(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	if Round(56.25) != 56 || Round(2.5) != 3 || Round(0) != 0 {
		t.Fatalf("unexpected rounding")
	}
	if Round1(3.4) != 3.4 || Round1(3.45) != 3.5 {
		t.Fatalf("unexpected one-decimal rounding: %v %v", Round1(3.4), Round1(3.45))
	}
}

func TestTasks_SeedPanel(t *testing.T) {
	t.Parallel()

	got := Tasks(store.Seed().Tasks, today)
	// Task 3 (due Feb 10, in review) is the only overdue one; task 1 is due today.
	want := TaskStats{Total: 5, InProgress: 2, Completed: 1, Overdue: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestHoursProgress(t *testing.T) {
	t.Parallel()

	byID := map[model.TaskID]int{}
	for _, tk := range store.Seed().Tasks {
		byID[tk.ID] = HoursProgress(tk)
	}
	want := map[model.TaskID]int{"1": 75, "2": 0, "3": 100, "4": 100, "5": 40}
	if diff := cmp.Diff(want, byID); diff != "" {
		t.Fatalf("unexpected progress (-want +got):\n%s", diff)
	}
}

func TestBoard_GroupsByStatus(t *testing.T) {
	t.Parallel()

	cols := Board(store.Seed().Tasks)
	got := map[model.TaskStatus]int{}
	for _, c := range cols {
		got[c.Status] = len(c.Tasks)
	}
	want := map[model.TaskStatus]int{model.TaskTodo: 1, model.TaskInProgress: 2, model.TaskReview: 1, model.TaskCompleted: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected board (-want +got):\n%s", diff)
	}
	if cols[0].Status != model.TaskTodo {
		t.Fatalf("expected todo column first, got %q", cols[0].Status)
	}
}

func TestIssuesAndTeam(t *testing.T) {
	t.Parallel()

	ds := store.Seed()
	if got, want := Issues(ds.Issues), (IssueStats{Total: 4, Open: 2, Resolved: 1, Critical: 1}); got != want {
		t.Fatalf("issues = %+v, want %+v", got, want)
	}
	want := TeamStats{Members: 4, Active: 3, CurrentTasks: 26, TasksCompleted: 211, Departments: 3}
	if got := Team(ds.Members); got != want {
		t.Fatalf("team = %+v, want %+v", got, want)
	}
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	ds := store.Seed()
	got := Schedule(ds.Events, ds.Notifications, today)
	want := ScheduleStats{Events: 5, Notifications: 5, Unread: 2, UpcomingDeadlines: 1, Today: 1}
	if got != want {
		t.Fatalf("schedule = %+v, want %+v", got, want)
	}

	sorted := SortEvents(ds.Events)
	if sorted[0].ID != "5" || sorted[len(sorted)-1].ID != "3" {
		t.Fatalf("unexpected event order: first=%s last=%s", sorted[0].ID, sorted[len(sorted)-1].ID)
	}
	ns := SortNotifications(ds.Notifications)
	if ns[0].ID != "1" || ns[len(ns)-1].ID != "5" {
		t.Fatalf("expected newest first, got %s..%s", ns[0].ID, ns[len(ns)-1].ID)
	}
}

func TestProgress_SeedPanel(t *testing.T) {
	t.Parallel()

	ds := store.Seed()
	got := Progress(ProgressInput{
		Projects:    ds.ProjectProgress,
		Tasks:       ds.TaskProgress,
		Performance: ds.Performance,
		Deadlines:   ds.Deadlines,
	}, today)
	want := ProgressStats{
		Projects:              4,
		OnTrack:               2,
		ActiveTasks:           3,
		OverdueTasks:          1,
		AverageProgress:       56,
		DueThisWeek:           0,
		OverdueDeadlines:      2,
		OnTimeDelivery:        90,
		AverageCompletionDays: 3.4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}

	var ids []string
	for _, d := range CriticalDeadlines(ds.Deadlines, today) {
		ids = append(ids, d.ID)
	}
	if diff := cmp.Diff([]string{"1", "2", "4"}, ids); diff != "" {
		t.Fatalf("unexpected critical deadlines (-want +got):\n%s", diff)
	}
	if tl := Timeline(ds.Deadlines, today); len(tl) != 1 || tl[0].ID != "3" {
		t.Fatalf("unexpected timeline: %+v", tl)
	}
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	ds := store.Seed()
	got := Dashboard(DashboardInput{
		Projects: ds.Projects, Tasks: ds.Tasks, Issues: ds.Issues,
		Members: ds.Members, Notifications: ds.Notifications,
	}, today)
	if got.ActiveProjects != 4 || got.TasksInProgress != 2 || got.CompletedTasks != 1 || got.TeamMembers != 4 {
		t.Fatalf("unexpected dashboard: %+v", got)
	}
	total := 0
	for _, sc := range got.TaskDistribution {
		total += sc.Count
	}
	if total != 5 {
		t.Fatalf("distribution should cover every task, got %d", total)
	}
}
