package form

import (
	"strconv"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/store"
)

var (
	MemberRoles = []string{
		"Project Manager", "Senior Developer", "Developer", "UX Designer",
		"UI Designer", "QA Engineer", "DevOps Engineer",
	}
	Departments = []string{
		"Engineering", "Design", "Quality Assurance", "Product", "Marketing", "Operations",
	}
)

func enumOptions[S ~string](xs []S) []Option {
	out := make([]Option, 0, len(xs))
	for _, x := range xs {
		out = append(out, Option{Value: string(x), Label: string(x)})
	}
	return out
}

func stringOptions(xs []string) []Option {
	out := make([]Option, 0, len(xs))
	for _, x := range xs {
		out = append(out, Option{Value: x, Label: x})
	}
	return out
}

func memberOptions(dir store.Directory) []Option {
	out := make([]Option, 0, len(dir.Members()))
	for _, m := range dir.Members() {
		out = append(out, Option{Value: string(m.ID), Label: m.Name})
	}
	return out
}

func projectOptions(dir store.Directory) []Option {
	out := make([]Option, 0, len(dir.Projects()))
	for _, p := range dir.Projects() {
		out = append(out, Option{Value: string(p.ID), Label: p.Name})
	}
	return out
}

// SplitList parses a comma separated multi-value field.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinList[S ~string](xs []S) string {
	return strings.Join(model.Strings(xs), ", ")
}

func formatHours(h float64) string { return strconv.FormatFloat(h, 'f', -1, 64) }

func parseHours(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

type ProjectDraft struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
	Manager     string `form:"manager" validate:"required"`
	Status      string `form:"status" validate:"required,oneof=planning in-progress review completed on-hold"`
	Priority    string `form:"priority" validate:"required,oneof=low medium high critical"`
	Budget      string `form:"budget" validate:"required,number"`
	StartDate   string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `form:"end_date" validate:"required,datetime=2006-01-02"`
	TeamMembers string `form:"team_members"`
	Client      string `form:"client"`
}

func ProjectDraftOf(p model.Project) *ProjectDraft {
	return &ProjectDraft{
		Name:        p.Name,
		Description: p.Description,
		Manager:     string(p.ManagerID),
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		Budget:      strconv.FormatInt(p.Budget, 10),
		StartDate:   string(p.StartDate),
		EndDate:     string(p.EndDate),
		TeamMembers: joinList(p.TeamMemberIDs),
		Client:      p.Client,
	}
}

func (d *ProjectDraft) Fields(dir store.Directory) []Field {
	return []Field{
		{Key: "name", Label: "Project Name", Required: "Please enter project name"},
		{Key: "manager", Label: "Project Manager", Kind: Select, Options: memberOptions(dir), Required: "Please select project manager"},
		{Key: "description", Label: "Description", Kind: TextArea, Required: "Please enter project description"},
		{Key: "status", Label: "Status", Kind: Select, Options: enumOptions(model.AllProjectStatuses), Required: "Please select status"},
		{Key: "priority", Label: "Priority", Kind: Select, Options: enumOptions(model.AllPriorities), Required: "Please select priority"},
		{Key: "budget", Label: "Budget ($)", Kind: Number, Required: "Please enter budget", Invalid: "Budget must be a whole number"},
		{Key: "start_date", Label: "Start Date", Kind: Date, Required: "Please select start date", Invalid: "Use YYYY-MM-DD"},
		{Key: "end_date", Label: "End Date", Kind: Date, Required: "Please select end date", Invalid: "Use YYYY-MM-DD"},
		{Key: "team_members", Label: "Team Members", Kind: MultiSelect, Options: memberOptions(dir)},
		{Key: "client", Label: "Client"},
	}
}

func (d *ProjectDraft) bind() map[string]*string {
	return map[string]*string{
		"name": &d.Name, "description": &d.Description, "manager": &d.Manager,
		"status": &d.Status, "priority": &d.Priority, "budget": &d.Budget,
		"start_date": &d.StartDate, "end_date": &d.EndDate,
		"team_members": &d.TeamMembers, "client": &d.Client,
	}
}

func (d *ProjectDraft) Value(key string) string { return get(d.bind(), key) }

func (d *ProjectDraft) SetValue(key, v string) { set(d.bind(), key, v) }

// Apply copies the draft's editable fields onto p, leaving the rest alone.
func (d *ProjectDraft) Apply(p *model.Project) {
	budget, _ := strconv.ParseInt(strings.TrimSpace(d.Budget), 10, 64)
	p.Name = strings.TrimSpace(d.Name)
	p.Description = strings.TrimSpace(d.Description)
	p.ManagerID = model.MemberID(d.Manager)
	p.Status = model.ProjectStatus(d.Status)
	p.Priority = model.Priority(d.Priority)
	p.Budget = budget
	p.StartDate = model.Date(d.StartDate)
	p.EndDate = model.Date(d.EndDate)
	p.TeamMemberIDs = []model.MemberID{}
	for _, id := range SplitList(d.TeamMembers) {
		p.TeamMemberIDs = append(p.TeamMemberIDs, model.MemberID(id))
	}
	p.Client = strings.TrimSpace(d.Client)
}

type TaskDraft struct {
	Title          string `form:"title" validate:"required"`
	Description    string `form:"description" validate:"required"`
	Status         string `form:"status" validate:"required,oneof=todo in-progress review completed"`
	Priority       string `form:"priority" validate:"required,oneof=low medium high critical"`
	EstimatedHours string `form:"estimated_hours" validate:"required,numeric"`
	ActualHours    string `form:"actual_hours" validate:"omitempty,numeric"`
	Assignee       string `form:"assignee" validate:"required"`
	Reporter       string `form:"reporter" validate:"required"`
	Project        string `form:"project" validate:"required"`
	DueDate        string `form:"due_date" validate:"required,datetime=2006-01-02"`
	Tags           string `form:"tags"`
}

func TaskDraftOf(t model.Task) *TaskDraft {
	d := &TaskDraft{
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		EstimatedHours: formatHours(t.EstimatedHours),
		Assignee:       string(t.AssigneeID),
		Reporter:       string(t.ReporterID),
		Project:        string(t.ProjectID),
		DueDate:        string(t.DueDate),
		Tags:           strings.Join(t.Tags, ", "),
	}
	if t.ActualHours != nil {
		d.ActualHours = formatHours(*t.ActualHours)
	}
	return d
}

func (d *TaskDraft) Fields(dir store.Directory) []Field {
	return []Field{
		{Key: "title", Label: "Task Title", Required: "Please enter task title"},
		{Key: "description", Label: "Description", Kind: TextArea, Required: "Please enter task description"},
		{Key: "status", Label: "Status", Kind: Select, Options: enumOptions(model.AllTaskStatuses), Required: "Please select status"},
		{Key: "priority", Label: "Priority", Kind: Select, Options: enumOptions(model.AllPriorities), Required: "Please select priority"},
		{Key: "estimated_hours", Label: "Estimated Hours", Kind: Number, Required: "Please enter estimated hours", Invalid: "Hours must be a number"},
		{Key: "actual_hours", Label: "Actual Hours", Kind: Number, Invalid: "Hours must be a number"},
		{Key: "assignee", Label: "Assignee", Kind: Select, Options: memberOptions(dir), Required: "Please select assignee"},
		{Key: "reporter", Label: "Reporter", Kind: Select, Options: memberOptions(dir), Required: "Please select reporter"},
		{Key: "project", Label: "Project", Kind: Select, Options: projectOptions(dir), Required: "Please select project"},
		{Key: "due_date", Label: "Due Date", Kind: Date, Required: "Please select due date", Invalid: "Use YYYY-MM-DD"},
		{Key: "tags", Label: "Tags"},
	}
}

func (d *TaskDraft) bind() map[string]*string {
	return map[string]*string{
		"title": &d.Title, "description": &d.Description, "status": &d.Status,
		"priority": &d.Priority, "estimated_hours": &d.EstimatedHours,
		"actual_hours": &d.ActualHours, "assignee": &d.Assignee, "reporter": &d.Reporter,
		"project": &d.Project, "due_date": &d.DueDate, "tags": &d.Tags,
	}
}

func (d *TaskDraft) Value(key string) string { return get(d.bind(), key) }

func (d *TaskDraft) SetValue(key, v string) { set(d.bind(), key, v) }

func (d *TaskDraft) Apply(t *model.Task) {
	t.Title = strings.TrimSpace(d.Title)
	t.Description = strings.TrimSpace(d.Description)
	t.Status = model.TaskStatus(d.Status)
	t.Priority = model.Priority(d.Priority)
	t.EstimatedHours = parseHours(d.EstimatedHours)
	t.ActualHours = nil
	if strings.TrimSpace(d.ActualHours) != "" {
		h := parseHours(d.ActualHours)
		t.ActualHours = &h
	}
	t.AssigneeID = model.MemberID(d.Assignee)
	t.ReporterID = model.MemberID(d.Reporter)
	t.ProjectID = model.ProjectID(d.Project)
	t.DueDate = model.Date(d.DueDate)
	t.Tags = SplitList(d.Tags)
	if t.Tags == nil {
		t.Tags = []string{}
	}
}

type IssueDraft struct {
	Title            string `form:"title" validate:"required"`
	Description      string `form:"description" validate:"required"`
	Type             string `form:"type" validate:"required,oneof=bug feature improvement task"`
	Priority         string `form:"priority" validate:"required,oneof=low medium high critical"`
	Severity         string `form:"severity" validate:"required,oneof=minor major critical blocker"`
	Status           string `form:"status" validate:"required,oneof=open in-progress resolved closed"`
	Assignee         string `form:"assignee" validate:"required"`
	Reporter         string `form:"reporter" validate:"required"`
	Project          string `form:"project" validate:"required"`
	DueDate          string `form:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Tags             string `form:"tags"`
	StepsToReproduce string `form:"steps_to_reproduce"`
	ExpectedBehavior string `form:"expected_behavior"`
	ActualBehavior   string `form:"actual_behavior"`
	Environment      string `form:"environment"`
}

func IssueDraftOf(i model.Issue) *IssueDraft {
	return &IssueDraft{
		Title:            i.Title,
		Description:      i.Description,
		Type:             string(i.Type),
		Priority:         string(i.Priority),
		Severity:         string(i.Severity),
		Status:           string(i.Status),
		Assignee:         string(i.AssigneeID),
		Reporter:         string(i.ReporterID),
		Project:          string(i.ProjectID),
		DueDate:          string(i.DueDate),
		Tags:             strings.Join(i.Tags, ", "),
		StepsToReproduce: i.StepsToReproduce,
		ExpectedBehavior: i.ExpectedBehavior,
		ActualBehavior:   i.ActualBehavior,
		Environment:      i.Environment,
	}
}

func (d *IssueDraft) Fields(dir store.Directory) []Field {
	fs := []Field{
		{Key: "title", Label: "Issue Title", Required: "Please enter issue title"},
		{Key: "description", Label: "Description", Kind: TextArea, Required: "Please enter issue description"},
		{Key: "type", Label: "Type", Kind: Select, Options: enumOptions(model.AllIssueTypes), Required: "Please select type"},
		{Key: "priority", Label: "Priority", Kind: Select, Options: enumOptions(model.AllPriorities), Required: "Please select priority"},
		{Key: "severity", Label: "Severity", Kind: Select, Options: enumOptions(model.AllSeverities), Required: "Please select severity"},
		{Key: "status", Label: "Status", Kind: Select, Options: enumOptions(model.AllIssueStatuses), Required: "Please select status"},
		{Key: "assignee", Label: "Assignee", Kind: Select, Options: memberOptions(dir), Required: "Please select assignee"},
		{Key: "reporter", Label: "Reporter", Kind: Select, Options: memberOptions(dir), Required: "Please select reporter"},
		{Key: "project", Label: "Project", Kind: Select, Options: projectOptions(dir), Required: "Please select project"},
		{Key: "due_date", Label: "Due Date", Kind: Date, Invalid: "Use YYYY-MM-DD"},
		{Key: "tags", Label: "Tags"},
	}
	// Bug reports get the reproduction fields.
	if d.Type == string(model.IssueBug) {
		fs = append(fs,
			Field{Key: "steps_to_reproduce", Label: "Steps to Reproduce", Kind: TextArea},
			Field{Key: "expected_behavior", Label: "Expected Behavior", Kind: TextArea},
			Field{Key: "actual_behavior", Label: "Actual Behavior", Kind: TextArea},
			Field{Key: "environment", Label: "Environment"},
		)
	}
	return fs
}

func (d *IssueDraft) bind() map[string]*string {
	return map[string]*string{
		"title": &d.Title, "description": &d.Description, "type": &d.Type,
		"priority": &d.Priority, "severity": &d.Severity, "status": &d.Status,
		"assignee": &d.Assignee, "reporter": &d.Reporter, "project": &d.Project,
		"due_date": &d.DueDate, "tags": &d.Tags,
		"steps_to_reproduce": &d.StepsToReproduce, "expected_behavior": &d.ExpectedBehavior,
		"actual_behavior": &d.ActualBehavior, "environment": &d.Environment,
	}
}

func (d *IssueDraft) Value(key string) string { return get(d.bind(), key) }

func (d *IssueDraft) SetValue(key, v string) { set(d.bind(), key, v) }

// Apply copies the draft onto i. Reproduction fields are kept for bugs only.
func (d *IssueDraft) Apply(i *model.Issue) {
	i.Title = strings.TrimSpace(d.Title)
	i.Description = strings.TrimSpace(d.Description)
	i.Type = model.IssueType(d.Type)
	i.Priority = model.Priority(d.Priority)
	i.Severity = model.Severity(d.Severity)
	i.Status = model.IssueStatus(d.Status)
	i.AssigneeID = model.MemberID(d.Assignee)
	i.ReporterID = model.MemberID(d.Reporter)
	i.ProjectID = model.ProjectID(d.Project)
	i.DueDate = model.Date(d.DueDate)
	i.Tags = SplitList(d.Tags)
	if i.Tags == nil {
		i.Tags = []string{}
	}
	if i.Type == model.IssueBug {
		i.StepsToReproduce = strings.TrimSpace(d.StepsToReproduce)
		i.ExpectedBehavior = strings.TrimSpace(d.ExpectedBehavior)
		i.ActualBehavior = strings.TrimSpace(d.ActualBehavior)
		i.Environment = strings.TrimSpace(d.Environment)
	} else {
		i.StepsToReproduce, i.ExpectedBehavior, i.ActualBehavior, i.Environment = "", "", "", ""
	}
}

// Patch expresses the draft as a store patch, so edits run through the store's
// issue rules (updated/resolved date stamping).
func (d *IssueDraft) Patch() store.IssuePatch {
	var i model.Issue
	d.Apply(&i)
	return store.IssuePatch{
		Title: &i.Title, Description: &i.Description, Type: &i.Type, Status: &i.Status,
		Priority: &i.Priority, Severity: &i.Severity, AssigneeID: &i.AssigneeID,
		ReporterID: &i.ReporterID, ProjectID: &i.ProjectID, DueDate: &i.DueDate, Tags: i.Tags,
		StepsToReproduce: &i.StepsToReproduce, ExpectedBehavior: &i.ExpectedBehavior,
		ActualBehavior: &i.ActualBehavior, Environment: &i.Environment,
	}
}

type MemberDraft struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	Phone      string `form:"phone" validate:"required"`
	Role       string `form:"role" validate:"required"`
	Department string `form:"department" validate:"required"`
	Status     string `form:"status" validate:"required,oneof=active inactive"`
}

func MemberDraftOf(m model.TeamMember) *MemberDraft {
	return &MemberDraft{
		Name: m.Name, Email: m.Email, Phone: m.Phone, Role: m.Role,
		Department: m.Department, Status: string(m.Status),
	}
}

func (d *MemberDraft) Fields(store.Directory) []Field {
	return []Field{
		{Key: "name", Label: "Full Name", Required: "Please enter the full name"},
		{Key: "email", Label: "Email", Required: "Please enter the email", Invalid: "Please enter a valid email"},
		{Key: "phone", Label: "Phone", Required: "Please enter the phone number"},
		{Key: "role", Label: "Role", Kind: Select, Options: stringOptions(MemberRoles), Required: "Please select a role"},
		{Key: "department", Label: "Department", Kind: Select, Options: stringOptions(Departments), Required: "Please select a department"},
		{Key: "status", Label: "Status", Kind: Select, Options: enumOptions(model.AllMemberStatuses), Required: "Please select a status"},
	}
}

func (d *MemberDraft) bind() map[string]*string {
	return map[string]*string{
		"name": &d.Name, "email": &d.Email, "phone": &d.Phone,
		"role": &d.Role, "department": &d.Department, "status": &d.Status,
	}
}

func (d *MemberDraft) Value(key string) string { return get(d.bind(), key) }

func (d *MemberDraft) SetValue(key, v string) { set(d.bind(), key, v) }

func (d *MemberDraft) Apply(m *model.TeamMember) {
	m.Name = strings.TrimSpace(d.Name)
	m.Email = strings.TrimSpace(d.Email)
	m.Phone = strings.TrimSpace(d.Phone)
	m.Role = d.Role
	m.Department = d.Department
	m.Status = model.MemberStatus(d.Status)
}

func get(b map[string]*string, key string) string {
	if p, ok := b[key]; ok {
		return *p
	}
	return ""
}

// set trims surrounding whitespace so a field of blanks counts as empty.
func set(b map[string]*string, key, v string) {
	if p, ok := b[key]; ok {
		*p = strings.TrimSpace(v)
	}
}
