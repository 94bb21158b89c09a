package store

import (
	"strings"

	"taskflow/internal/model"

	"go.uber.org/zap"
)

func (db *DB) CreateProject(p model.Project) model.Project {
	p.Progress = 0
	p.Tasks = model.TaskCounts{}
	out := db.Projects.Create(p)
	db.log.Info("project created", zap.String("id", string(out.ID)), zap.String("name", out.Name))
	return out
}

func (db *DB) CreateTask(t model.Task) model.Task {
	t.CreatedDate = db.Today()
	t.Comments = nil
	if t.Tags == nil {
		t.Tags = []string{}
	}
	out := db.Tasks.Create(t)
	db.log.Info("task created", zap.String("id", string(out.ID)), zap.String("title", out.Title))
	return out
}

func (db *DB) CreateIssue(i model.Issue) model.Issue {
	today := db.Today()
	i.CreatedDate = today
	i.UpdatedDate = today
	i.ResolvedDate = ""
	i.Comments = nil
	if i.Tags == nil {
		i.Tags = []string{}
	}
	if i.Attachments == nil {
		i.Attachments = []string{}
	}
	out := db.Issues.Create(i)
	db.log.Info("issue created", zap.String("id", string(out.ID)), zap.String("title", out.Title))
	return out
}

func (db *DB) CreateMember(m model.TeamMember) model.TeamMember {
	m.JoinDate = db.Today()
	m.TasksCompleted = 0
	m.CurrentTasks = 0
	if m.Status == "" {
		m.Status = model.MemberActive
	}
	out := db.Members.Create(m)
	db.log.Info("member created", zap.String("id", string(out.ID)), zap.String("name", out.Name))
	return out
}

func (db *DB) CreateEvent(e model.ScheduleEvent) model.ScheduleEvent {
	if e.Status == "" {
		e.Status = model.EventUpcoming
	}
	out := db.Events.Create(e)
	db.log.Info("event created", zap.String("id", string(out.ID)), zap.String("title", out.Title))
	return out
}

func (db *DB) UpdateProject(id model.ProjectID, p ProjectPatch) bool {
	return db.logUpdate("project", string(id), db.Projects.Update(string(id), func(x *model.Project) { p.Apply(x) }))
}

func (db *DB) UpdateTask(id model.TaskID, p TaskPatch) bool {
	return db.logUpdate("task", string(id), db.Tasks.Update(string(id), func(x *model.Task) { p.Apply(x) }))
}

// UpdateIssue applies p and stamps the issue's updated date.
func (db *DB) UpdateIssue(id model.IssueID, p IssuePatch) bool {
	today := db.Today()
	ok := db.Issues.Update(string(id), func(x *model.Issue) {
		prev := x.Status
		p.Apply(x)
		x.UpdatedDate = today
		stampResolved(x, prev, today)
	})
	return db.logUpdate("issue", string(id), ok)
}

func (db *DB) UpdateMember(id model.MemberID, p MemberPatch) bool {
	return db.logUpdate("member", string(id), db.Members.Update(string(id), func(x *model.TeamMember) { p.Apply(x) }))
}

// EditProject, EditTask and EditMember run a form's apply func against the
// stored record. Issues go through UpdateIssue so their dates are stamped.

func (db *DB) EditProject(id model.ProjectID, apply func(*model.Project)) bool {
	return db.logUpdate("project", string(id), db.Projects.Update(string(id), apply))
}

func (db *DB) EditTask(id model.TaskID, apply func(*model.Task)) bool {
	return db.logUpdate("task", string(id), db.Tasks.Update(string(id), apply))
}

func (db *DB) EditMember(id model.MemberID, apply func(*model.TeamMember)) bool {
	return db.logUpdate("member", string(id), db.Members.Update(string(id), apply))
}

func (db *DB) DeleteProject(id model.ProjectID) bool {
	return db.logDelete("project", string(id), db.Projects.Delete(string(id)))
}

func (db *DB) DeleteTask(id model.TaskID) bool {
	return db.logDelete("task", string(id), db.Tasks.Delete(string(id)))
}

func (db *DB) DeleteIssue(id model.IssueID) bool {
	return db.logDelete("issue", string(id), db.Issues.Delete(string(id)))
}

func (db *DB) DeleteMember(id model.MemberID) bool {
	return db.logDelete("member", string(id), db.Members.Delete(string(id)))
}

func (db *DB) DeleteEvent(id model.EventID) bool {
	return db.logDelete("event", string(id), db.Events.Delete(string(id)))
}

func (db *DB) SetTaskStatus(id model.TaskID, s model.TaskStatus) bool {
	return db.UpdateTask(id, TaskPatch{Status: &s})
}

// SetIssueStatus moves an issue to s. Moving into resolved stamps the resolved
// date; moving back out of resolved/closed clears it.
func (db *DB) SetIssueStatus(id model.IssueID, s model.IssueStatus) bool {
	return db.UpdateIssue(id, IssuePatch{Status: &s})
}

func stampResolved(x *model.Issue, prev model.IssueStatus, today model.Date) {
	switch x.Status {
	case model.IssueResolved:
		if prev != model.IssueResolved || x.ResolvedDate.IsZero() {
			x.ResolvedDate = today
		}
	case model.IssueOpen, model.IssueInProgress:
		x.ResolvedDate = ""
	}
}

func (db *DB) newComment(author model.MemberID, content string, kind model.CommentKind) (model.Comment, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Comment{}, false
	}
	if kind == "" {
		kind = model.CommentNote
	}
	return model.Comment{
		ID:        model.CommentID(db.nextID()),
		AuthorID:  author,
		Content:   content,
		Timestamp: db.now().UTC(),
		Kind:      kind,
	}, true
}

// AddTaskComment appends a comment; blank content or an unknown task is a no-op.
func (db *DB) AddTaskComment(id model.TaskID, author model.MemberID, content string) (model.Comment, bool) {
	c, ok := db.newComment(author, content, model.CommentNote)
	if !ok {
		return model.Comment{}, false
	}
	if !db.Tasks.Update(string(id), func(t *model.Task) { t.Comments = append(t.Comments, c) }) {
		db.logUpdate("task", string(id), false)
		return model.Comment{}, false
	}
	return c, true
}

func (db *DB) AddIssueComment(id model.IssueID, author model.MemberID, content string) (model.Comment, bool) {
	c, ok := db.newComment(author, content, model.CommentNote)
	if !ok {
		return model.Comment{}, false
	}
	today := db.Today()
	if !db.Issues.Update(string(id), func(i *model.Issue) {
		i.Comments = append(i.Comments, c)
		i.UpdatedDate = today
	}) {
		db.logUpdate("issue", string(id), false)
		return model.Comment{}, false
	}
	return c, true
}

func (db *DB) MarkNotificationRead(id model.NotificationID) bool {
	return db.logUpdate("notification", string(id),
		db.Notifications.Update(string(id), func(n *model.Notification) { n.Read = true }))
}

// MarkAllNotificationsRead returns how many notifications changed state.
func (db *DB) MarkAllNotificationsRead() int {
	n := 0
	for _, it := range db.Notifications.List(func(n model.Notification) bool { return !n.Read }) {
		if db.Notifications.Update(string(it.ID), func(x *model.Notification) { x.Read = true }) {
			n++
		}
	}
	return n
}

func (db *DB) logUpdate(kind, id string, ok bool) bool {
	if !ok {
		db.log.Info("update ignored: no such record", zap.String("kind", kind), zap.String("id", id))
	}
	return ok
}

func (db *DB) logDelete(kind, id string, ok bool) bool {
	if ok {
		db.log.Info("record deleted", zap.String("kind", kind), zap.String("id", id))
	}
	return ok
}
