package cli

import (
	"fmt"
	"strconv"
	"strings"

	"taskflow/internal/filter"
	"taskflow/internal/format"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksStatsCmd(app))
	cmd.AddCommand(newTasksBoardCmd(app))
	return cmd
}

func tasksTable(db *store.DB) func([]model.Task) format.Table {
	dir := db.Directory()
	return func(ts []model.Task) format.Table {
		t := format.Table{Head: []string{"ID", "TITLE", "STATUS", "PRIORITY", "ASSIGNEE", "PROJECT", "DUE", "HOURS"}}
		for _, task := range ts {
			due := dateOrDash(task.DueDate)
			if stats.Overdue(task, db.Now()) {
				due += " (overdue)"
			}
			t.Body = append(t.Body, []string{
				string(task.ID), task.Title, style.Label(string(task.Status)), style.Label(string(task.Priority)),
				dir.MemberName(task.AssigneeID), dir.ProjectName(task.ProjectID), due,
				strconv.Itoa(stats.HoursProgress(task)) + "%",
			})
		}
		return t
	}
}

func newTasksListCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := filter.Tasks(app.db.Directory())
			if err := applyFilters(set, ff, app.db.Directory()); err != nil {
				return writeErr(cmd, err)
			}
			return writeList(cmd, app, set, app.db.Tasks.All(), tasksTable(app.db))
		},
	}
	ff = addFilterFlags(cmd, filter.KeyStatus, filter.KeyPriority, filter.KeyAssignee)
	return cmd
}

func commentLines(dir store.Directory, cs []model.Comment) string {
	var lines []string
	for _, c := range cs {
		who := dir.MemberName(c.AuthorID)
		if who == "" {
			who = "anonymous"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", who, c.Content))
	}
	return strings.Join(lines, "\n")
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := app.db.Tasks.Get(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("task", args[0]))
			}
			dir := app.db.Directory()
			actual := "-"
			if t.ActualHours != nil {
				actual = strconv.FormatFloat(*t.ActualHours, 'f', -1, 64)
			}
			kv := format.KV{
				{"id", string(t.ID)},
				{"title", t.Title},
				{"description", t.Description},
				{"status", style.Label(string(t.Status))},
				{"priority", style.Label(string(t.Priority))},
				{"assignee", dir.MemberName(t.AssigneeID)},
				{"reporter", dir.MemberName(t.ReporterID)},
				{"project", dir.ProjectName(t.ProjectID)},
				{"due", dateOrDash(t.DueDate)},
				{"overdue", strconv.FormatBool(stats.Overdue(t, app.db.Now()))},
				{"estimated hours", strconv.FormatFloat(t.EstimatedHours, 'f', -1, 64)},
				{"actual hours", actual},
				{"tags", strings.Join(t.Tags, ", ")},
				{"comments", commentLines(dir, t.Comments)},
			}
			return writeRecord(cmd, app, t, kv)
		},
	}
}

func newTasksStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Task summary numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stats.Tasks(app.db.Tasks.All(), app.db.Now())
			kv := format.KV{
				{"total", strconv.Itoa(st.Total)},
				{"in progress", strconv.Itoa(st.InProgress)},
				{"completed", strconv.Itoa(st.Completed)},
				{"overdue", strconv.Itoa(st.Overdue)},
			}
			return writeRecord(cmd, app, st, kv)
		},
	}
}

func newTasksBoardCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Tasks grouped into status columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := filter.Tasks(app.db.Directory())
			if err := applyFilters(set, ff, app.db.Directory()); err != nil {
				return writeErr(cmd, err)
			}
			cols := stats.Board(set.Apply(app.db.Tasks.All()))
			if app.Format != "table" {
				return writeOut(cmd, app, format.Envelope{Data: cols})
			}
			return writeOut(cmd, app, format.Envelope{Data: boardTable(cols)})
		},
	}
	ff = addFilterFlags(cmd, filter.KeyPriority, filter.KeyAssignee)
	return cmd
}

// boardTable lays columns side by side, one task title per cell.
func boardTable(cols []stats.Column) format.Table {
	t := format.Table{}
	depth := 0
	for _, c := range cols {
		t.Head = append(t.Head, fmt.Sprintf("%s (%d)", style.Label(string(c.Status)), len(c.Tasks)))
		depth = max(depth, len(c.Tasks))
	}
	for i := range depth {
		row := make([]string, len(cols))
		for j, c := range cols {
			if i < len(c.Tasks) {
				row[j] = c.Tasks[i].Title
			}
		}
		t.Body = append(t.Body, row)
	}
	return t
}
