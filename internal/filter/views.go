package filter

import (
	"fmt"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
)

// Selector keys shared by the TUI filter bar and the CLI flags.
const (
	KeyStatus     = "status"
	KeyPriority   = "priority"
	KeyType       = "type"
	KeyAssignee   = "assignee"
	KeyDepartment = "department"
	KeyProject    = "project"
)

func memberIDs(dir store.Directory) []string {
	out := make([]string, 0, len(dir.Members()))
	for _, m := range dir.Members() {
		out = append(out, string(m.ID))
	}
	return out
}

func projectIDs(dir store.Directory) []string {
	out := make([]string, 0, len(dir.Projects()))
	for _, p := range dir.Projects() {
		out = append(out, string(p.ID))
	}
	return out
}

func Projects() *Set[model.Project] {
	return NewSet(
		Selector[model.Project]{Key: KeyStatus, Label: "Status", Options: model.Strings(model.AllProjectStatuses),
			Field: func(p model.Project) string { return string(p.Status) }},
		Selector[model.Project]{Key: KeyPriority, Label: "Priority", Options: model.Strings(model.AllPriorities),
			Field: func(p model.Project) string { return string(p.Priority) }},
	)
}

// Tasks filters by status and assignee. Assignee options are member ids; use
// store.Directory to show or resolve names.
func Tasks(dir store.Directory) *Set[model.Task] {
	return NewSet(
		Selector[model.Task]{Key: KeyStatus, Label: "Status", Options: model.Strings(model.AllTaskStatuses),
			Field: func(t model.Task) string { return string(t.Status) }},
		Selector[model.Task]{Key: KeyPriority, Label: "Priority", Options: model.Strings(model.AllPriorities),
			Field: func(t model.Task) string { return string(t.Priority) }},
		Selector[model.Task]{Key: KeyAssignee, Label: "Assignee", Options: memberIDs(dir),
			Field: func(t model.Task) string { return string(t.AssigneeID) }},
	)
}

func Issues() *Set[model.Issue] {
	return NewSet(
		Selector[model.Issue]{Key: KeyStatus, Label: "Status", Options: model.Strings(model.AllIssueStatuses),
			Field: func(i model.Issue) string { return string(i.Status) }},
		Selector[model.Issue]{Key: KeyType, Label: "Type", Options: model.Strings(model.AllIssueTypes),
			Field: func(i model.Issue) string { return string(i.Type) }},
		Selector[model.Issue]{Key: KeyPriority, Label: "Priority", Options: model.Strings(model.AllPriorities),
			Field: func(i model.Issue) string { return string(i.Priority) }},
	)
}

func Members(departments []string) *Set[model.TeamMember] {
	return NewSet(
		Selector[model.TeamMember]{Key: KeyDepartment, Label: "Department", Options: departments,
			Field: func(m model.TeamMember) string { return m.Department }},
		Selector[model.TeamMember]{Key: KeyStatus, Label: "Status", Options: model.Strings(model.AllMemberStatuses),
			Field: func(m model.TeamMember) string { return string(m.Status) }},
	)
}

func Events(dir store.Directory) *Set[model.ScheduleEvent] {
	return NewSet(
		Selector[model.ScheduleEvent]{Key: KeyType, Label: "Type", Options: model.Strings(model.AllEventTypes),
			Field: func(e model.ScheduleEvent) string { return string(e.Type) }},
		Selector[model.ScheduleEvent]{Key: KeyProject, Label: "Project", Options: projectIDs(dir),
			Field: func(e model.ScheduleEvent) string { return string(e.ProjectID) }},
	)
}

// ProgressProjects selects which project the progress view is scoped to.
func ProgressProjects(dir store.Directory) *Set[model.ProjectProgress] {
	return NewSet(
		Selector[model.ProjectProgress]{Key: KeyProject, Label: "Project", Options: projectIDs(dir),
			Field: func(p model.ProjectProgress) string { return string(p.ProjectID) }},
	)
}

// DisplayValue renders a selector value for people: member and project ids
// become names.
func DisplayValue(dir store.Directory, key, value string) string {
	if value == "" || value == All {
		return All
	}
	switch key {
	case KeyAssignee:
		return dir.MemberName(model.MemberID(value))
	case KeyProject:
		return dir.ProjectName(model.ProjectID(value))
	}
	return value
}

// TimeRange bounds the progress view's deadline list around today.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeAll     TimeRange = "all"
)

var TimeRanges = []TimeRange{RangeWeek, RangeMonth, RangeQuarter, RangeAll}

func ParseTimeRange(s string) (TimeRange, error) {
	for _, r := range TimeRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid time range %q (want week, month, quarter or all)", s)
}

func (r TimeRange) Days() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	case RangeQuarter:
		return 90
	}
	return -1
}

// Contains reports whether a deadline daysAway from today is inside the range.
// Overdue items inside the window count too.
func (r TimeRange) Contains(daysAway int) bool {
	n := r.Days()
	if n < 0 {
		return true
	}
	return daysAway <= n && daysAway >= -n
}

func (r TimeRange) Next() TimeRange {
	for i, x := range TimeRanges {
		if x == r {
			return TimeRanges[(i+1)%len(TimeRanges)]
		}
	}
	return RangeWeek
}

// ScopeProgress narrows the progress inputs to the project chosen in sel and
// drops deadlines outside r. Member performance is team-wide and passes
// through untouched.
func ScopeProgress(in stats.ProgressInput, sel *Set[model.ProjectProgress], r TimeRange, today time.Time) stats.ProgressInput {
	project := sel.Value(KeyProject)
	inProject := func(id model.ProjectID) bool { return project == All || string(id) == project }

	out := stats.ProgressInput{
		Projects:    sel.Apply(in.Projects),
		Performance: in.Performance,
	}
	for _, t := range in.Tasks {
		if inProject(t.ProjectID) {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, d := range in.Deadlines {
		if inProject(d.ProjectID) && r.Contains(d.DaysRemaining(today)) {
			out.Deadlines = append(out.Deadlines, d)
		}
	}
	return out
}
