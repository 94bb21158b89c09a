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

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsStatsCmd(app))
	return cmd
}

func projectsTable(dir store.Directory) func([]model.Project) format.Table {
	return func(ps []model.Project) format.Table {
		t := format.Table{Head: []string{"ID", "NAME", "STATUS", "PRIORITY", "PROGRESS", "MANAGER", "BUDGET", "END"}}
		for _, p := range ps {
			t.Body = append(t.Body, []string{
				string(p.ID), p.Name, style.Label(string(p.Status)), style.Label(string(p.Priority)),
				strconv.Itoa(p.Progress) + "%", dir.MemberName(p.ManagerID), stats.Money(p.Budget), dateOrDash(p.EndDate),
			})
		}
		return t
	}
}

func newProjectsListCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := filter.Projects()
			if err := applyFilters(set, ff, app.db.Directory()); err != nil {
				return writeErr(cmd, err)
			}
			return writeList(cmd, app, set, app.db.Projects.All(), projectsTable(app.db.Directory()))
		},
	}
	ff = addFilterFlags(cmd, filter.KeyStatus, filter.KeyPriority)
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id|name>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.db.Directory()
			id, ok := dir.ResolveProject(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("project", args[0]))
			}
			p, _ := app.db.Projects.Get(string(id))
			kv := format.KV{
				{"id", string(p.ID)},
				{"name", p.Name},
				{"description", p.Description},
				{"status", style.Label(string(p.Status))},
				{"priority", style.Label(string(p.Priority))},
				{"progress", strconv.Itoa(p.Progress) + "%"},
				{"manager", dir.MemberName(p.ManagerID)},
				{"client", p.Client},
				{"budget", stats.Money(p.Budget)},
				{"start", dateOrDash(p.StartDate)},
				{"end", dateOrDash(p.EndDate)},
				{"team", strings.Join(dir.MemberNames(p.TeamMemberIDs), ", ")},
				{"tasks", strconv.Itoa(p.Tasks.Completed) + "/" + strconv.Itoa(p.Tasks.Total) + " completed"},
			}
			return writeRecord(cmd, app, p, kv)
		},
	}
}

func newProjectsStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Project summary numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stats.Projects(app.db.Projects.All())
			kv := format.KV{
				{"total", strconv.Itoa(st.Total)},
				{"in progress", strconv.Itoa(st.InProgress)},
				{"completed", strconv.Itoa(st.Completed)},
				{"budget", st.BudgetLabel},
			}
			return writeRecord(cmd, app, st, kv)
		},
	}
}
