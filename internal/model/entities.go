package model

import "time"

type TaskCounts struct {
	Total      int `json:"total" yaml:"total"`
	Completed  int `json:"completed" yaml:"completed"`
	InProgress int `json:"inProgress" yaml:"inProgress"`
	Pending    int `json:"pending" yaml:"pending"`
}

type Project struct {
	ID            ProjectID     `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	Status        ProjectStatus `json:"status" yaml:"status"`
	Priority      Priority      `json:"priority" yaml:"priority"`
	StartDate     Date          `json:"startDate" yaml:"startDate"`
	EndDate       Date          `json:"endDate" yaml:"endDate"`
	Progress      int           `json:"progress" yaml:"progress"` // 0-100
	Budget        int64         `json:"budget" yaml:"budget"`     // whole dollars
	TeamMemberIDs []MemberID    `json:"teamMemberIds" yaml:"teamMemberIds"`
	Tasks         TaskCounts    `json:"tasks" yaml:"tasks"`
	ManagerID     MemberID      `json:"managerId" yaml:"managerId"`
	Client        string        `json:"client,omitempty" yaml:"client,omitempty"`
}

func (p Project) RecordID() string { return string(p.ID) }

func (p Project) WithRecordID(id string) Project {
	p.ID = ProjectID(id)
	return p
}

func (p Project) Clone() Project {
	if p.TeamMemberIDs != nil {
		p.TeamMemberIDs = append([]MemberID(nil), p.TeamMemberIDs...)
	}
	return p
}

type Task struct {
	ID             TaskID     `json:"id" yaml:"id"`
	Title          string     `json:"title" yaml:"title"`
	Description    string     `json:"description" yaml:"description"`
	Status         TaskStatus `json:"status" yaml:"status"`
	Priority       Priority   `json:"priority" yaml:"priority"`
	AssigneeID     MemberID   `json:"assigneeId" yaml:"assigneeId"`
	ReporterID     MemberID   `json:"reporterId" yaml:"reporterId"`
	ProjectID      ProjectID  `json:"projectId" yaml:"projectId"`
	DueDate        Date       `json:"dueDate" yaml:"dueDate"`
	CreatedDate    Date       `json:"createdDate" yaml:"createdDate"`
	EstimatedHours float64    `json:"estimatedHours" yaml:"estimatedHours"`
	ActualHours    *float64   `json:"actualHours,omitempty" yaml:"actualHours,omitempty"`
	Tags           []string   `json:"tags" yaml:"tags"`
	Comments       []Comment  `json:"comments" yaml:"comments"`
}

func (t Task) RecordID() string { return string(t.ID) }

func (t Task) WithRecordID(id string) Task {
	t.ID = TaskID(id)
	return t
}

func (t Task) Clone() Task {
	t.Tags = cloneStrings(t.Tags)
	t.Comments = cloneComments(t.Comments)
	if t.ActualHours != nil {
		h := *t.ActualHours
		t.ActualHours = &h
	}
	return t
}

// Issue carries the Task fields plus issue classification and bug-report details.
type Issue struct {
	ID           IssueID     `json:"id" yaml:"id"`
	Title        string      `json:"title" yaml:"title"`
	Description  string      `json:"description" yaml:"description"`
	Type         IssueType   `json:"type" yaml:"type"`
	Status       IssueStatus `json:"status" yaml:"status"`
	Priority     Priority    `json:"priority" yaml:"priority"`
	Severity     Severity    `json:"severity" yaml:"severity"`
	AssigneeID   MemberID    `json:"assigneeId" yaml:"assigneeId"`
	ReporterID   MemberID    `json:"reporterId" yaml:"reporterId"`
	ProjectID    ProjectID   `json:"projectId" yaml:"projectId"`
	CreatedDate  Date        `json:"createdDate" yaml:"createdDate"`
	UpdatedDate  Date        `json:"updatedDate" yaml:"updatedDate"`
	ResolvedDate Date        `json:"resolvedDate,omitempty" yaml:"resolvedDate,omitempty"`
	DueDate      Date        `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Tags         []string    `json:"tags" yaml:"tags"`
	Attachments  []string    `json:"attachments" yaml:"attachments"`
	Comments     []Comment   `json:"comments" yaml:"comments"`

	StepsToReproduce string `json:"stepsToReproduce,omitempty" yaml:"stepsToReproduce,omitempty"`
	ExpectedBehavior string `json:"expectedBehavior,omitempty" yaml:"expectedBehavior,omitempty"`
	ActualBehavior   string `json:"actualBehavior,omitempty" yaml:"actualBehavior,omitempty"`
	Environment      string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

func (i Issue) RecordID() string { return string(i.ID) }

func (i Issue) WithRecordID(id string) Issue {
	i.ID = IssueID(id)
	return i
}

func (i Issue) Clone() Issue {
	i.Tags = cloneStrings(i.Tags)
	i.Attachments = cloneStrings(i.Attachments)
	i.Comments = cloneComments(i.Comments)
	return i
}

type TeamMember struct {
	ID             MemberID     `json:"id" yaml:"id"`
	Name           string       `json:"name" yaml:"name"`
	Email          string       `json:"email" yaml:"email"`
	Phone          string       `json:"phone" yaml:"phone"`
	Role           string       `json:"role" yaml:"role"`
	Department     string       `json:"department" yaml:"department"`
	Status         MemberStatus `json:"status" yaml:"status"`
	JoinDate       Date         `json:"joinDate" yaml:"joinDate"`
	TasksCompleted int          `json:"tasksCompleted" yaml:"tasksCompleted"`
	CurrentTasks   int          `json:"currentTasks" yaml:"currentTasks"`
}

func (m TeamMember) RecordID() string { return string(m.ID) }

func (m TeamMember) WithRecordID(id string) TeamMember {
	m.ID = MemberID(id)
	return m
}

func (m TeamMember) Clone() TeamMember { return m }

type ScheduleEvent struct {
	ID          EventID     `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Type        EventType   `json:"type" yaml:"type"`
	Date        Date        `json:"date" yaml:"date"`
	Time        string      `json:"time,omitempty" yaml:"time,omitempty"` // HH:MM
	AssigneeID  MemberID    `json:"assigneeId,omitempty" yaml:"assigneeId,omitempty"`
	ProjectID   ProjectID   `json:"projectId" yaml:"projectId"`
	Priority    Priority    `json:"priority" yaml:"priority"`
	Status      EventStatus `json:"status" yaml:"status"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

func (e ScheduleEvent) RecordID() string { return string(e.ID) }

func (e ScheduleEvent) WithRecordID(id string) ScheduleEvent {
	e.ID = EventID(id)
	return e
}

func (e ScheduleEvent) Clone() ScheduleEvent { return e }

type Notification struct {
	ID         NotificationID   `json:"id" yaml:"id"`
	Title      string           `json:"title" yaml:"title"`
	Message    string           `json:"message" yaml:"message"`
	Type       NotificationType `json:"type" yaml:"type"`
	Timestamp  time.Time        `json:"timestamp" yaml:"timestamp"`
	Read       bool             `json:"read" yaml:"read"`
	AssigneeID MemberID         `json:"assigneeId,omitempty" yaml:"assigneeId,omitempty"`
	ProjectID  ProjectID        `json:"projectId,omitempty" yaml:"projectId,omitempty"`
}

func (n Notification) RecordID() string { return string(n.ID) }

func (n Notification) WithRecordID(id string) Notification {
	n.ID = NotificationID(id)
	return n
}

func (n Notification) Clone() Notification { return n }
