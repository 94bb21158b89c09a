package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
)

const displayDate = "Jan 02, 2006"

// RenderMarkdown renders a status report of ds as of now.
func RenderMarkdown(ds store.Dataset, dir store.Directory, now time.Time) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}
	row := func(cells ...string) {
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		writeLn("| " + strings.Join(cells, " | ") + " |")
	}
	header := func(cells ...string) {
		row(cells...)
		sep := make([]string, len(cells))
		for i := range sep {
			sep[i] = "---"
		}
		writeLn("| " + strings.Join(sep, " | ") + " |")
	}

	writeLn("# TaskFlow report")
	writeLn("")
	writeLn("Generated " + now.Format(displayDate) + ".")
	writeLn("")

	ps := stats.Projects(ds.Projects)
	writeLn("## Projects")
	writeLn("")
	writeLn(fmt.Sprintf("%d projects, %d in progress, %d completed. Total budget %s.",
		ps.Total, ps.InProgress, ps.Completed, ps.BudgetLabel))
	writeLn("")
	header("Name", "Status", "Priority", "Progress", "Budget", "Manager", "End")
	for _, p := range ds.Projects {
		row(p.Name, string(p.Status), string(p.Priority), fmt.Sprintf("%d%%", p.Progress),
			stats.Money(p.Budget), dir.MemberName(p.ManagerID), p.EndDate.Format(displayDate))
	}
	writeLn("")

	ts := stats.Tasks(ds.Tasks, now)
	writeLn("## Tasks")
	writeLn("")
	writeLn(fmt.Sprintf("%d tasks, %d in progress, %d completed, %d overdue.",
		ts.Total, ts.InProgress, ts.Completed, ts.Overdue))
	writeLn("")
	header("Title", "Status", "Priority", "Assignee", "Project", "Due", "Hours")
	for _, t := range ds.Tasks {
		due := t.DueDate.Format(displayDate)
		if stats.Overdue(t, now) {
			due += " (overdue)"
		}
		row(t.Title, string(t.Status), string(t.Priority), dir.MemberName(t.AssigneeID),
			dir.ProjectName(t.ProjectID), due, fmt.Sprintf("%d%%", stats.HoursProgress(t)))
	}
	writeLn("")

	is := stats.Issues(ds.Issues)
	writeLn("## Issues")
	writeLn("")
	writeLn(fmt.Sprintf("%d issues, %d open, %d resolved, %d critical.", is.Total, is.Open, is.Resolved, is.Critical))
	writeLn("")
	header("Title", "Type", "Status", "Severity", "Assignee", "Updated")
	for _, i := range ds.Issues {
		row(i.Title, string(i.Type), string(i.Status), string(i.Severity),
			dir.MemberName(i.AssigneeID), i.UpdatedDate.Format(displayDate))
	}
	writeLn("")

	tm := stats.Team(ds.Members)
	writeLn("## Team")
	writeLn("")
	writeLn(fmt.Sprintf("%d active of %d members across %d departments.", tm.Active, tm.Members, tm.Departments))
	writeLn("")
	header("Name", "Role", "Department", "Status", "Current", "Completed")
	for _, m := range ds.Members {
		row(m.Name, m.Role, m.Department, string(m.Status),
			fmt.Sprint(m.CurrentTasks), fmt.Sprint(m.TasksCompleted))
	}
	writeLn("")

	writeLn("## Deadlines")
	writeLn("")
	crit := stats.CriticalDeadlines(ds.Deadlines, now)
	if len(crit) == 0 {
		writeLn("No deadline alerts.")
	}
	for _, d := range crit {
		writeLn(fmt.Sprintf("- **%s** (%s): %s", d.Title, d.Date.Format(displayDate), deadlineNote(d, now)))
	}
	writeLn("")

	return buf.String()
}

func deadlineNote(d model.Deadline, now time.Time) string {
	n := d.DaysRemaining(now)
	switch d.Status(now) {
	case model.DeadlineOverdue:
		return fmt.Sprintf("overdue by %d days", -n)
	case model.DeadlineDueToday:
		return "due today"
	}
	return fmt.Sprintf("due in %d days", n)
}
