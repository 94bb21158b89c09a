package stats

import (
	"time"

	"taskflow/internal/model"
)

type StatusCount struct {
	Status model.TaskStatus `json:"status" yaml:"status"`
	Count  int              `json:"count" yaml:"count"`
}

type DashboardStats struct {
	ActiveProjects   int           `json:"activeProjects" yaml:"activeProjects"`
	TasksInProgress  int           `json:"tasksInProgress" yaml:"tasksInProgress"`
	CompletedTasks   int           `json:"completedTasks" yaml:"completedTasks"`
	TeamMembers      int           `json:"teamMembers" yaml:"teamMembers"`
	OverdueTasks     int           `json:"overdueTasks" yaml:"overdueTasks"`
	OpenIssues       int           `json:"openIssues" yaml:"openIssues"`
	Unread           int           `json:"unreadNotifications" yaml:"unreadNotifications"`
	TaskDistribution []StatusCount `json:"taskDistribution" yaml:"taskDistribution"`
}

type DashboardInput struct {
	Projects      []model.Project
	Tasks         []model.Task
	Issues        []model.Issue
	Members       []model.TeamMember
	Notifications []model.Notification
}

// Dashboard summarizes every area. Active projects are those not completed and
// not on hold.
func Dashboard(in DashboardInput, today time.Time) DashboardStats {
	ts := Tasks(in.Tasks, today)
	st := DashboardStats{
		ActiveProjects: count(in.Projects, func(p model.Project) bool {
			return p.Status != model.ProjectCompleted && p.Status != model.ProjectOnHold
		}),
		TasksInProgress: ts.InProgress,
		CompletedTasks:  ts.Completed,
		TeamMembers:     len(in.Members),
		OverdueTasks:    ts.Overdue,
		OpenIssues:      Issues(in.Issues).Open,
		Unread:          Unread(in.Notifications),
	}
	for _, s := range model.AllTaskStatuses {
		st.TaskDistribution = append(st.TaskDistribution, StatusCount{
			Status: s,
			Count:  count(in.Tasks, func(t model.Task) bool { return t.Status == s }),
		})
	}
	return st
}
