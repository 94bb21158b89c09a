package cli

import (
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

func newIssuesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Issue commands",
	}
	cmd.AddCommand(newIssuesListCmd(app))
	cmd.AddCommand(newIssuesShowCmd(app))
	cmd.AddCommand(newIssuesStatsCmd(app))
	return cmd
}

func issuesTable(dir store.Directory) func([]model.Issue) format.Table {
	return func(is []model.Issue) format.Table {
		t := format.Table{Head: []string{"ID", "TITLE", "TYPE", "STATUS", "PRIORITY", "SEVERITY", "ASSIGNEE", "CREATED"}}
		for _, i := range is {
			t.Body = append(t.Body, []string{
				string(i.ID), i.Title, style.Label(string(i.Type)), style.Label(string(i.Status)),
				style.Label(string(i.Priority)), style.Label(string(i.Severity)),
				dir.MemberName(i.AssigneeID), dateOrDash(i.CreatedDate),
			})
		}
		return t
	}
}

func newIssuesListCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := filter.Issues()
			if err := applyFilters(set, ff, app.db.Directory()); err != nil {
				return writeErr(cmd, err)
			}
			return writeList(cmd, app, set, app.db.Issues.All(), issuesTable(app.db.Directory()))
		},
	}
	ff = addFilterFlags(cmd, filter.KeyStatus, filter.KeyType, filter.KeyPriority)
	return cmd
}

func newIssuesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <issue-id>",
		Short: "Show one issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, ok := app.db.Issues.Get(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("issue", args[0]))
			}
			dir := app.db.Directory()
			kv := format.KV{
				{"id", string(i.ID)},
				{"title", i.Title},
				{"description", i.Description},
				{"type", style.Label(string(i.Type))},
				{"status", style.Label(string(i.Status))},
				{"priority", style.Label(string(i.Priority))},
				{"severity", style.Label(string(i.Severity))},
				{"assignee", dir.MemberName(i.AssigneeID)},
				{"reporter", dir.MemberName(i.ReporterID)},
				{"project", dir.ProjectName(i.ProjectID)},
				{"created", dateOrDash(i.CreatedDate)},
				{"updated", dateOrDash(i.UpdatedDate)},
				{"resolved", dateOrDash(i.ResolvedDate)},
				{"tags", strings.Join(i.Tags, ", ")},
			}
			if i.Type == model.IssueBug {
				kv = append(kv,
					[2]string{"steps to reproduce", i.StepsToReproduce},
					[2]string{"expected", i.ExpectedBehavior},
					[2]string{"actual", i.ActualBehavior},
					[2]string{"environment", i.Environment},
				)
			}
			kv = append(kv, [2]string{"comments", commentLines(dir, i.Comments)})
			return writeRecord(cmd, app, i, kv)
		},
	}
}

func newIssuesStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Issue summary numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stats.Issues(app.db.Issues.All())
			kv := format.KV{
				{"total", strconv.Itoa(st.Total)},
				{"open", strconv.Itoa(st.Open)},
				{"resolved", strconv.Itoa(st.Resolved)},
				{"critical", strconv.Itoa(st.Critical)},
			}
			return writeRecord(cmd, app, st, kv)
		},
	}
}
