package model

import "time"

// ProjectProgress is a progress-tracking snapshot of one project.
type ProjectProgress struct {
	ID             string    `json:"id" yaml:"id"`
	ProjectID      ProjectID `json:"projectId" yaml:"projectId"`
	Progress       int       `json:"progress" yaml:"progress"`
	Deadline       Date      `json:"deadline" yaml:"deadline"`
	Health         Health    `json:"status" yaml:"status"`
	TasksCompleted int       `json:"tasksCompleted" yaml:"tasksCompleted"`
	TotalTasks     int       `json:"totalTasks" yaml:"totalTasks"`
	TeamSize       int       `json:"teamSize" yaml:"teamSize"`
}

func (p ProjectProgress) RecordID() string { return p.ID }

func (p ProjectProgress) WithRecordID(id string) ProjectProgress {
	p.ID = id
	return p
}

func (p ProjectProgress) Clone() ProjectProgress { return p }

type TaskProgress struct {
	ID         string    `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	ProjectID  ProjectID `json:"projectId" yaml:"projectId"`
	AssigneeID MemberID  `json:"assigneeId" yaml:"assigneeId"`
	Progress   int       `json:"progress" yaml:"progress"`
	Deadline   Date      `json:"deadline" yaml:"deadline"`
	Health     Health    `json:"status" yaml:"status"`
	Priority   Priority  `json:"priority" yaml:"priority"`
}

func (t TaskProgress) RecordID() string { return t.ID }

func (t TaskProgress) WithRecordID(id string) TaskProgress {
	t.ID = id
	return t
}

func (t TaskProgress) Clone() TaskProgress { return t }

type MemberPerformance struct {
	ID                    string   `json:"id" yaml:"id"`
	MemberID              MemberID `json:"memberId" yaml:"memberId"`
	TasksCompleted        int      `json:"tasksCompleted" yaml:"tasksCompleted"`
	TasksInProgress       int      `json:"tasksInProgress" yaml:"tasksInProgress"`
	AverageCompletionDays float64  `json:"averageCompletionTime" yaml:"averageCompletionTime"`
	OnTimeDelivery        int      `json:"onTimeDelivery" yaml:"onTimeDelivery"` // percent
}

func (m MemberPerformance) RecordID() string { return m.ID }

func (m MemberPerformance) WithRecordID(id string) MemberPerformance {
	m.ID = id
	return m
}

func (m MemberPerformance) Clone() MemberPerformance { return m }

type Deadline struct {
	ID         string       `json:"id" yaml:"id"`
	Title      string       `json:"title" yaml:"title"`
	Kind       DeadlineKind `json:"type" yaml:"type"`
	Date       Date         `json:"deadline" yaml:"deadline"`
	AssigneeID MemberID     `json:"assigneeId,omitempty" yaml:"assigneeId,omitempty"`
	ProjectID  ProjectID    `json:"projectId,omitempty" yaml:"projectId,omitempty"`
}

func (d Deadline) RecordID() string { return d.ID }

func (d Deadline) WithRecordID(id string) Deadline {
	d.ID = id
	return d
}

func (d Deadline) Clone() Deadline { return d }

// DaysRemaining is negative once the deadline has passed.
func (d Deadline) DaysRemaining(today time.Time) int {
	n, _ := d.Date.DaysFrom(today)
	return n
}

func (d Deadline) Status(today time.Time) DeadlineStatus {
	switch n := d.DaysRemaining(today); {
	case n < 0:
		return DeadlineOverdue
	case n == 0:
		return DeadlineDueToday
	default:
		return DeadlineUpcoming
	}
}
