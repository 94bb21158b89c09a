package filter

import (
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
)

func seedDB() *store.DB {
	return store.OpenSeed(store.WithClock(func() time.Time {
		return time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	}))
}

func TestTasks_FilterByAssigneeResolvedFromName(t *testing.T) {
	t.Parallel()

	db := seedDB()
	dir := db.Directory()
	set := Tasks(dir)

	id, ok := dir.ResolveMember("Emma Davis")
	if !ok {
		t.Fatalf("expected Emma to resolve")
	}
	if err := set.SetValue(KeyAssignee, string(id)); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	got := set.Apply(db.Tasks.All())
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected tasks for Emma: %+v", got)
	}
	if DisplayValue(dir, KeyAssignee, set.Value(KeyAssignee)) != "Emma Davis" {
		t.Fatalf("expected name display for assignee filter")
	}
}

func TestIssues_StatusTypePriority(t *testing.T) {
	t.Parallel()

	db := seedDB()
	set := Issues()
	_ = set.SetValue(KeyStatus, string(model.IssueOpen))
	_ = set.SetValue(KeyType, string(model.IssueBug))
	got := set.Apply(db.Issues.All())
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only issue 1, got %+v", got)
	}
}

func TestTimeRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		r    TimeRange
		days int
		want bool
	}{
		{RangeWeek, 7, true},
		{RangeWeek, 8, false},
		{RangeWeek, -2, true},
		{RangeMonth, 29, true},
		{RangeQuarter, 120, false},
		{RangeAll, 1000, true},
	}
	for _, tc := range cases {
		if got := tc.r.Contains(tc.days); got != tc.want {
			t.Fatalf("%s.Contains(%d) = %v, want %v", tc.r, tc.days, got, tc.want)
		}
	}
	if _, err := ParseTimeRange("year"); err == nil {
		t.Fatalf("expected error for unknown range")
	}
	if RangeAll.Next() != RangeWeek {
		t.Fatalf("expected range cycle to wrap")
	}
}

func TestScopeProgress(t *testing.T) {
	t.Parallel()

	db := seedDB()
	in := stats.ProgressInput{
		Projects:    db.ProjectProgress.All(),
		Tasks:       db.TaskProgress.All(),
		Performance: db.Performance.All(),
		Deadlines:   db.Deadlines.All(),
	}
	sel := ProgressProjects(db.Directory())

	all := ScopeProgress(in, sel, RangeAll, db.Now())
	if len(all.Projects) != 4 || len(all.Tasks) != 4 || len(all.Deadlines) != 4 {
		t.Fatalf("unscoped input should pass through: %d/%d/%d", len(all.Projects), len(all.Tasks), len(all.Deadlines))
	}

	week := ScopeProgress(in, sel, RangeWeek, db.Now())
	if len(week.Deadlines) != 3 {
		t.Fatalf("expected 3 deadlines within a week of today, got %d", len(week.Deadlines))
	}

	if err := sel.SetValue(KeyProject, "1"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	one := ScopeProgress(in, sel, RangeAll, db.Now())
	if len(one.Projects) != 1 || len(one.Tasks) != 1 || len(one.Deadlines) != 2 {
		t.Fatalf("expected website redesign only: %d/%d/%d", len(one.Projects), len(one.Tasks), len(one.Deadlines))
	}
	if len(one.Performance) != 4 {
		t.Fatalf("performance is team-wide")
	}
}
