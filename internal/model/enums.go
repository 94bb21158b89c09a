package model

import "slices"

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectReview     ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on-hold"
)

var AllProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectReview, ProjectCompleted, ProjectOnHold}

func (s ProjectStatus) Valid() bool { return slices.Contains(AllProjectStatuses, s) }

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool { return slices.Contains(AllPriorities, p) }

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

var AllTaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskCompleted}

func (s TaskStatus) Valid() bool { return slices.Contains(AllTaskStatuses, s) }

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in-progress"
	IssueResolved   IssueStatus = "resolved"
	IssueClosed     IssueStatus = "closed"
)

var AllIssueStatuses = []IssueStatus{IssueOpen, IssueInProgress, IssueResolved, IssueClosed}

func (s IssueStatus) Valid() bool { return slices.Contains(AllIssueStatuses, s) }

type IssueType string

const (
	IssueBug         IssueType = "bug"
	IssueFeature     IssueType = "feature"
	IssueImprovement IssueType = "improvement"
	IssueTask        IssueType = "task"
)

var AllIssueTypes = []IssueType{IssueBug, IssueFeature, IssueImprovement, IssueTask}

func (t IssueType) Valid() bool { return slices.Contains(AllIssueTypes, t) }

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
	SeverityBlocker  Severity = "blocker"
)

var AllSeverities = []Severity{SeverityMinor, SeverityMajor, SeverityCritical, SeverityBlocker}

func (s Severity) Valid() bool { return slices.Contains(AllSeverities, s) }

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

var AllMemberStatuses = []MemberStatus{MemberActive, MemberInactive}

func (s MemberStatus) Valid() bool { return slices.Contains(AllMemberStatuses, s) }

type EventType string

const (
	EventTask      EventType = "task"
	EventDeadline  EventType = "deadline"
	EventMeeting   EventType = "meeting"
	EventMilestone EventType = "milestone"
)

var AllEventTypes = []EventType{EventTask, EventDeadline, EventMeeting, EventMilestone}

func (t EventType) Valid() bool { return slices.Contains(AllEventTypes, t) }

type EventStatus string

const (
	EventUpcoming   EventStatus = "upcoming"
	EventInProgress EventStatus = "in-progress"
	EventCompleted  EventStatus = "completed"
	EventOverdue    EventStatus = "overdue"
)

var AllEventStatuses = []EventStatus{EventUpcoming, EventInProgress, EventCompleted, EventOverdue}

func (s EventStatus) Valid() bool { return slices.Contains(AllEventStatuses, s) }

type NotificationType string

const (
	NotifyTaskAssigned     NotificationType = "task_assigned"
	NotifyDeadlineReminder NotificationType = "deadline_reminder"
	NotifyTaskCompleted    NotificationType = "task_completed"
	NotifyProjectUpdate    NotificationType = "project_update"
	NotifyMeetingReminder  NotificationType = "meeting_reminder"
)

var AllNotificationTypes = []NotificationType{NotifyTaskAssigned, NotifyDeadlineReminder, NotifyTaskCompleted, NotifyProjectUpdate, NotifyMeetingReminder}

func (t NotificationType) Valid() bool { return slices.Contains(AllNotificationTypes, t) }

// Health is the progress-tracking state of a project or task.
type Health string

const (
	HealthOnTrack Health = "on-track"
	HealthAtRisk  Health = "at-risk"
	HealthDelayed Health = "delayed"
	HealthOverdue Health = "overdue"
)

var AllHealth = []Health{HealthOnTrack, HealthAtRisk, HealthDelayed, HealthOverdue}

func (h Health) Valid() bool { return slices.Contains(AllHealth, h) }

type DeadlineKind string

const (
	DeadlineProject DeadlineKind = "project"
	DeadlineTask    DeadlineKind = "task"
)

// DeadlineStatus is derived from a deadline's date and today; it is never stored.
type DeadlineStatus string

const (
	DeadlineUpcoming DeadlineStatus = "upcoming"
	DeadlineDueToday DeadlineStatus = "due-today"
	DeadlineOverdue  DeadlineStatus = "overdue"
)

type CommentKind string

const (
	CommentNote         CommentKind = "comment"
	CommentStatusChange CommentKind = "status_change"
	CommentAssignment   CommentKind = "assignment"
)

// Strings converts a typed enum slice into plain strings, e.g. for filter options.
func Strings[S ~string](xs []S) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, string(x))
	}
	return out
}
