package tui

import (
	"fmt"
	"strings"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"
)

const displayDate = "Jan 02, 2006"

// Detail panes are built as markdown and rendered through glamour.

func mdKV(b *strings.Builder, pairs ...string) {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			continue
		}
		parts = append(parts, "**"+pairs[i]+":** "+pairs[i+1])
	}
	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, " · "))
		b.WriteString("\n\n")
	}
}

func mdTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "`" + t + "`"
	}
	return strings.Join(out, " ")
}

func mdComments(b *strings.Builder, dir store.Directory, cs []model.Comment) {
	b.WriteString("### Comments\n\n")
	if len(cs) == 0 {
		b.WriteString("_No comments yet._\n")
		return
	}
	for _, c := range cs {
		who := dir.MemberName(c.AuthorID)
		if who == "" {
			who = "anonymous"
		}
		fmt.Fprintf(b, "- **%s** (%s): %s\n", who, c.Timestamp.Format("Jan 02 15:04"), c.Content)
	}
}

func dueLabel(d model.Date, overdue bool) string {
	if d.IsZero() {
		return ""
	}
	s := d.Format(displayDate)
	if overdue {
		s += " (overdue)"
	}
	return s
}

func projectMarkdown(p model.Project, dir store.Directory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.Name)
	mdKV(&b,
		"Status", style.Label(string(p.Status)),
		"Priority", style.Label(string(p.Priority)),
		"Progress", fmt.Sprintf("%d%%", p.Progress),
	)
	mdKV(&b,
		"Manager", dir.MemberName(p.ManagerID),
		"Client", p.Client,
		"Budget", stats.Money(p.Budget),
	)
	mdKV(&b, "Start", p.StartDate.Format(displayDate), "End", p.EndDate.Format(displayDate))
	b.WriteString(p.Description + "\n\n")
	if names := dir.MemberNames(p.TeamMemberIDs); len(names) > 0 {
		b.WriteString("**Team:** " + strings.Join(names, ", ") + "\n\n")
	}
	fmt.Fprintf(&b, "**Tasks:** %d total, %d completed, %d in progress, %d pending\n",
		p.Tasks.Total, p.Tasks.Completed, p.Tasks.InProgress, p.Tasks.Pending)
	return b.String()
}

func taskMarkdown(t model.Task, dir store.Directory, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", t.Title)
	mdKV(&b,
		"Status", style.Label(string(t.Status)),
		"Priority", style.Label(string(t.Priority)),
	)
	mdKV(&b,
		"Assignee", dir.MemberName(t.AssigneeID),
		"Reporter", dir.MemberName(t.ReporterID),
		"Project", dir.ProjectName(t.ProjectID),
	)
	hours := fmt.Sprintf("%g estimated", t.EstimatedHours)
	if t.ActualHours != nil {
		hours = fmt.Sprintf("%g / %g (%d%%)", *t.ActualHours, t.EstimatedHours, stats.HoursProgress(t))
	}
	mdKV(&b, "Due", dueLabel(t.DueDate, stats.Overdue(t, now)), "Hours", hours, "Tags", mdTags(t.Tags))
	b.WriteString(t.Description + "\n\n")
	mdComments(&b, dir, t.Comments)
	return b.String()
}

func issueMarkdown(i model.Issue, dir store.Directory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", i.Title)
	mdKV(&b,
		"Type", style.Label(string(i.Type)),
		"Status", style.Label(string(i.Status)),
		"Priority", style.Label(string(i.Priority)),
		"Severity", style.Label(string(i.Severity)),
	)
	mdKV(&b,
		"Assignee", dir.MemberName(i.AssigneeID),
		"Reporter", dir.MemberName(i.ReporterID),
		"Project", dir.ProjectName(i.ProjectID),
	)
	mdKV(&b,
		"Created", i.CreatedDate.Format(displayDate),
		"Updated", i.UpdatedDate.Format(displayDate),
		"Resolved", dueLabel(i.ResolvedDate, false),
		"Due", dueLabel(i.DueDate, false),
	)
	if tags := mdTags(i.Tags); tags != "" {
		b.WriteString(tags + "\n\n")
	}
	b.WriteString(i.Description + "\n\n")
	if i.Type == model.IssueBug {
		for _, sec := range []struct{ title, body string }{
			{"Steps to reproduce", i.StepsToReproduce},
			{"Expected behavior", i.ExpectedBehavior},
			{"Actual behavior", i.ActualBehavior},
			{"Environment", i.Environment},
		} {
			if strings.TrimSpace(sec.body) != "" {
				fmt.Fprintf(&b, "### %s\n\n%s\n\n", sec.title, sec.body)
			}
		}
	}
	mdComments(&b, dir, i.Comments)
	return b.String()
}

func memberMarkdown(m model.TeamMember, perf *model.MemberPerformance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", m.Name)
	mdKV(&b, "Role", m.Role, "Department", m.Department, "Status", style.Label(string(m.Status)))
	mdKV(&b, "Email", m.Email, "Phone", m.Phone, "Joined", m.JoinDate.Format(displayDate))
	fmt.Fprintf(&b, "**Current tasks:** %d · **Completed:** %d\n\n", m.CurrentTasks, m.TasksCompleted)
	if perf != nil {
		fmt.Fprintf(&b, "### Performance\n\n- %d tasks completed, %d in progress\n- %.1f days average completion\n- %d%% on-time delivery\n",
			perf.TasksCompleted, perf.TasksInProgress, perf.AverageCompletionDays, perf.OnTimeDelivery)
	}
	return b.String()
}
