package stats

import (
	"sort"
	"time"

	"taskflow/internal/model"
)

type ProgressStats struct {
	Projects              int     `json:"projects" yaml:"projects"`
	OnTrack               int     `json:"onTrack" yaml:"onTrack"`
	ActiveTasks           int     `json:"activeTasks" yaml:"activeTasks"`
	OverdueTasks          int     `json:"overdueTasks" yaml:"overdueTasks"`
	AverageProgress       int     `json:"averageProgress" yaml:"averageProgress"`
	DueThisWeek           int     `json:"dueThisWeek" yaml:"dueThisWeek"`
	OverdueDeadlines      int     `json:"overdueDeadlines" yaml:"overdueDeadlines"`
	OnTimeDelivery        int     `json:"onTimeDelivery" yaml:"onTimeDelivery"`
	AverageCompletionDays float64 `json:"averageCompletionDays" yaml:"averageCompletionDays"`
}

type ProgressInput struct {
	Projects    []model.ProjectProgress
	Tasks       []model.TaskProgress
	Performance []model.MemberPerformance
	Deadlines   []model.Deadline
}

func Progress(in ProgressInput, today time.Time) ProgressStats {
	st := ProgressStats{
		Projects: len(in.Projects),
		OnTrack:  count(in.Projects, func(p model.ProjectProgress) bool { return p.Health == model.HealthOnTrack }),
		ActiveTasks: count(in.Tasks, func(t model.TaskProgress) bool {
			return t.Health != model.HealthOverdue
		}),
		OverdueTasks: count(in.Tasks, func(t model.TaskProgress) bool { return t.Health == model.HealthOverdue }),
		AverageProgress: Round(average(in.Projects, func(p model.ProjectProgress) float64 {
			return float64(p.Progress)
		})),
		OnTimeDelivery: Round(average(in.Performance, func(m model.MemberPerformance) float64 {
			return float64(m.OnTimeDelivery)
		})),
		AverageCompletionDays: Round1(average(in.Performance, func(m model.MemberPerformance) float64 {
			return m.AverageCompletionDays
		})),
	}
	for _, d := range in.Deadlines {
		switch d.Status(today) {
		case model.DeadlineUpcoming:
			if d.DaysRemaining(today) <= 7 {
				st.DueThisWeek++
			}
		case model.DeadlineOverdue:
			st.OverdueDeadlines++
		}
	}
	return st
}

// CriticalDeadlines are the ones worth an alert: overdue, due today, or due
// within three days.
func CriticalDeadlines(ds []model.Deadline, today time.Time) []model.Deadline {
	var out []model.Deadline
	for _, d := range ds {
		switch d.Status(today) {
		case model.DeadlineOverdue, model.DeadlineDueToday:
			out = append(out, d)
		case model.DeadlineUpcoming:
			if d.DaysRemaining(today) <= 3 {
				out = append(out, d)
			}
		}
	}
	return out
}

// Timeline returns the upcoming deadlines, soonest first.
func Timeline(ds []model.Deadline, today time.Time) []model.Deadline {
	var out []model.Deadline
	for _, d := range ds {
		if d.Status(today) == model.DeadlineUpcoming {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
