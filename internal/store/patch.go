package store

import "taskflow/internal/model"

// Patches carry only the fields being changed. A nil field leaves the stored
// value untouched.

type ProjectPatch struct {
	Name          *string
	Description   *string
	Status        *model.ProjectStatus
	Priority      *model.Priority
	StartDate     *model.Date
	EndDate       *model.Date
	Progress      *int
	Budget        *int64
	TeamMemberIDs []model.MemberID
	ManagerID     *model.MemberID
	Client        *string
}

func (p ProjectPatch) Apply(t *model.Project) {
	setIf(&t.Name, p.Name)
	setIf(&t.Description, p.Description)
	setIf(&t.Status, p.Status)
	setIf(&t.Priority, p.Priority)
	setIf(&t.StartDate, p.StartDate)
	setIf(&t.EndDate, p.EndDate)
	setIf(&t.Progress, p.Progress)
	setIf(&t.Budget, p.Budget)
	setIf(&t.ManagerID, p.ManagerID)
	setIf(&t.Client, p.Client)
	if p.TeamMemberIDs != nil {
		t.TeamMemberIDs = append([]model.MemberID(nil), p.TeamMemberIDs...)
	}
}

type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *model.TaskStatus
	Priority       *model.Priority
	AssigneeID     *model.MemberID
	ReporterID     *model.MemberID
	ProjectID      *model.ProjectID
	DueDate        *model.Date
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
}

func (p TaskPatch) Apply(t *model.Task) {
	setIf(&t.Title, p.Title)
	setIf(&t.Description, p.Description)
	setIf(&t.Status, p.Status)
	setIf(&t.Priority, p.Priority)
	setIf(&t.AssigneeID, p.AssigneeID)
	setIf(&t.ReporterID, p.ReporterID)
	setIf(&t.ProjectID, p.ProjectID)
	setIf(&t.DueDate, p.DueDate)
	setIf(&t.EstimatedHours, p.EstimatedHours)
	if p.ActualHours != nil {
		h := *p.ActualHours
		t.ActualHours = &h
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), p.Tags...)
	}
}

type IssuePatch struct {
	Title            *string
	Description      *string
	Type             *model.IssueType
	Status           *model.IssueStatus
	Priority         *model.Priority
	Severity         *model.Severity
	AssigneeID       *model.MemberID
	ReporterID       *model.MemberID
	ProjectID        *model.ProjectID
	DueDate          *model.Date
	Tags             []string
	StepsToReproduce *string
	ExpectedBehavior *string
	ActualBehavior   *string
	Environment      *string
}

func (p IssuePatch) Apply(t *model.Issue) {
	setIf(&t.Title, p.Title)
	setIf(&t.Description, p.Description)
	setIf(&t.Type, p.Type)
	setIf(&t.Status, p.Status)
	setIf(&t.Priority, p.Priority)
	setIf(&t.Severity, p.Severity)
	setIf(&t.AssigneeID, p.AssigneeID)
	setIf(&t.ReporterID, p.ReporterID)
	setIf(&t.ProjectID, p.ProjectID)
	setIf(&t.DueDate, p.DueDate)
	setIf(&t.StepsToReproduce, p.StepsToReproduce)
	setIf(&t.ExpectedBehavior, p.ExpectedBehavior)
	setIf(&t.ActualBehavior, p.ActualBehavior)
	setIf(&t.Environment, p.Environment)
	if p.Tags != nil {
		t.Tags = append([]string(nil), p.Tags...)
	}
}

type MemberPatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Role       *string
	Department *string
	Status     *model.MemberStatus
}

func (p MemberPatch) Apply(m *model.TeamMember) {
	setIf(&m.Name, p.Name)
	setIf(&m.Email, p.Email)
	setIf(&m.Phone, p.Phone)
	setIf(&m.Role, p.Role)
	setIf(&m.Department, p.Department)
	setIf(&m.Status, p.Status)
}

func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// Ptr is a convenience for building patches from literals.
func Ptr[V any](v V) *V { return &v }
