// Package stats computes the stat panels shown above every view. Everything is
// a straight linear pass over the current records; nothing is cached.
package stats

import (
	"math"
	"slices"
	"sort"
	"time"

	"taskflow/internal/model"

	"github.com/dustin/go-humanize"
)

// Round rounds half away from zero for positive values, matching Math.round for
// the non-negative quantities the panels show.
func Round(x float64) int { return int(math.Floor(x + 0.5)) }

// Round1 rounds to one decimal place.
func Round1(x float64) float64 { return math.Floor(x*10+0.5) / 10 }

// Money formats whole dollars as "$270,000".
func Money(v int64) string {
	if v < 0 {
		return "-$" + humanize.Comma(-v)
	}
	return "$" + humanize.Comma(v)
}

func count[T any](xs []T, pred func(T) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}
	return n
}

func average[T any](xs []T, f func(T) float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += f(x)
	}
	return sum / float64(len(xs))
}

type ProjectStats struct {
	Total       int    `json:"total" yaml:"total"`
	InProgress  int    `json:"inProgress" yaml:"inProgress"`
	Completed   int    `json:"completed" yaml:"completed"`
	Budget      int64  `json:"budget" yaml:"budget"`
	BudgetLabel string `json:"budgetLabel" yaml:"budgetLabel"`
}

func Projects(ps []model.Project) ProjectStats {
	var budget int64
	for _, p := range ps {
		budget += p.Budget
	}
	return ProjectStats{
		Total:       len(ps),
		InProgress:  count(ps, func(p model.Project) bool { return p.Status == model.ProjectInProgress }),
		Completed:   count(ps, func(p model.Project) bool { return p.Status == model.ProjectCompleted }),
		Budget:      budget,
		BudgetLabel: Money(budget),
	}
}

type TaskStats struct {
	Total      int `json:"total" yaml:"total"`
	InProgress int `json:"inProgress" yaml:"inProgress"`
	Completed  int `json:"completed" yaml:"completed"`
	Overdue    int `json:"overdue" yaml:"overdue"`
}

// Overdue reports a task as overdue when its due date is before today and it
// isn't completed.
func Overdue(t model.Task, today time.Time) bool {
	return t.Status != model.TaskCompleted && t.DueDate.Before(today)
}

func Tasks(ts []model.Task, today time.Time) TaskStats {
	return TaskStats{
		Total:      len(ts),
		InProgress: count(ts, func(t model.Task) bool { return t.Status == model.TaskInProgress }),
		Completed:  count(ts, func(t model.Task) bool { return t.Status == model.TaskCompleted }),
		Overdue:    count(ts, func(t model.Task) bool { return Overdue(t, today) }),
	}
}

// HoursProgress is actual/estimated hours as a percentage capped at 100. Tasks
// without both values report 0.
func HoursProgress(t model.Task) int {
	if t.ActualHours == nil || *t.ActualHours == 0 || t.EstimatedHours == 0 {
		return 0
	}
	return Round(math.Min(*t.ActualHours/t.EstimatedHours*100, 100))
}

type Column struct {
	Status model.TaskStatus `json:"status" yaml:"status"`
	Tasks  []model.Task     `json:"tasks" yaml:"tasks"`
}

// Board groups tasks into one column per status, in status order, keeping the
// input order inside each column.
func Board(ts []model.Task) []Column {
	cols := make([]Column, 0, len(model.AllTaskStatuses))
	for _, s := range model.AllTaskStatuses {
		col := Column{Status: s, Tasks: []model.Task{}}
		for _, t := range ts {
			if t.Status == s {
				col.Tasks = append(col.Tasks, t)
			}
		}
		cols = append(cols, col)
	}
	return cols
}

type IssueStats struct {
	Total    int `json:"total" yaml:"total"`
	Open     int `json:"open" yaml:"open"`
	Resolved int `json:"resolved" yaml:"resolved"`
	Critical int `json:"critical" yaml:"critical"`
}

func Issues(is []model.Issue) IssueStats {
	return IssueStats{
		Total:    len(is),
		Open:     count(is, func(i model.Issue) bool { return i.Status == model.IssueOpen }),
		Resolved: count(is, func(i model.Issue) bool { return i.Status == model.IssueResolved }),
		Critical: count(is, func(i model.Issue) bool { return i.Priority == model.PriorityCritical }),
	}
}

type TeamStats struct {
	Members        int `json:"members" yaml:"members"`
	Active         int `json:"active" yaml:"active"`
	CurrentTasks   int `json:"currentTasks" yaml:"currentTasks"`
	TasksCompleted int `json:"tasksCompleted" yaml:"tasksCompleted"`
	Departments    int `json:"departments" yaml:"departments"`
}

func Team(ms []model.TeamMember) TeamStats {
	st := TeamStats{
		Members: len(ms),
		Active:  count(ms, func(m model.TeamMember) bool { return m.Status == model.MemberActive }),
	}
	for _, m := range ms {
		st.CurrentTasks += m.CurrentTasks
		st.TasksCompleted += m.TasksCompleted
	}
	st.Departments = len(Departments(ms))
	return st
}

// Departments lists distinct departments in first-seen order.
func Departments(ms []model.TeamMember) []string {
	var out []string
	for _, m := range ms {
		if m.Department != "" && !slices.Contains(out, m.Department) {
			out = append(out, m.Department)
		}
	}
	return out
}

type ScheduleStats struct {
	Events            int `json:"events" yaml:"events"`
	Notifications     int `json:"notifications" yaml:"notifications"`
	Unread            int `json:"unread" yaml:"unread"`
	UpcomingDeadlines int `json:"upcomingDeadlines" yaml:"upcomingDeadlines"`
	Today             int `json:"today" yaml:"today"`
}

func Schedule(es []model.ScheduleEvent, ns []model.Notification, today time.Time) ScheduleStats {
	return ScheduleStats{
		Events:            len(es),
		Notifications:     len(ns),
		Unread:            Unread(ns),
		UpcomingDeadlines: len(UpcomingDeadlines(es, today)),
		Today:             len(EventsOn(es, today)),
	}
}

func Unread(ns []model.Notification) int {
	return count(ns, func(n model.Notification) bool { return !n.Read })
}

// UpcomingDeadlines returns deadline events dated after today, soonest first.
func UpcomingDeadlines(es []model.ScheduleEvent, today time.Time) []model.ScheduleEvent {
	var out []model.ScheduleEvent
	for _, e := range es {
		if n, ok := e.Date.DaysFrom(today); ok && n > 0 && e.Type == model.EventDeadline {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func EventsOn(es []model.ScheduleEvent, day time.Time) []model.ScheduleEvent {
	var out []model.ScheduleEvent
	for _, e := range es {
		if e.Date.SameDay(day) {
			out = append(out, e)
		}
	}
	return out
}

// SortEvents orders events by date then time; undated events go last.
func SortEvents(es []model.ScheduleEvent) []model.ScheduleEvent {
	out := slices.Clone(es)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date.IsZero() != b.Date.IsZero() {
			return !a.Date.IsZero()
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	return out
}

// SortNotifications orders notifications newest first.
func SortNotifications(ns []model.Notification) []model.Notification {
	out := slices.Clone(ns)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}
