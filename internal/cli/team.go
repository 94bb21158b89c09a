package cli

import (
	"strconv"

	"taskflow/internal/filter"
	"taskflow/internal/format"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/style"

	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team member commands",
	}
	cmd.AddCommand(newTeamListCmd(app))
	cmd.AddCommand(newTeamStatsCmd(app))
	return cmd
}

func teamTable(ms []model.TeamMember) format.Table {
	t := format.Table{Head: []string{"ID", "NAME", "ROLE", "DEPARTMENT", "STATUS", "CURRENT", "COMPLETED", "EMAIL"}}
	for _, m := range ms {
		t.Body = append(t.Body, []string{
			string(m.ID), m.Name, m.Role, m.Department, style.Label(string(m.Status)),
			strconv.Itoa(m.CurrentTasks), strconv.Itoa(m.TasksCompleted), m.Email,
		})
	}
	return t
}

func newTeamListCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members := app.db.Members.All()
			set := filter.Members(stats.Departments(members))
			if err := applyFilters(set, ff, app.db.Directory()); err != nil {
				return writeErr(cmd, err)
			}
			return writeList(cmd, app, set, members, teamTable)
		},
	}
	ff = addFilterFlags(cmd, filter.KeyDepartment, filter.KeyStatus)
	return cmd
}

func newTeamStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Team summary numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stats.Team(app.db.Members.All())
			kv := format.KV{
				{"members", strconv.Itoa(st.Members)},
				{"active", strconv.Itoa(st.Active)},
				{"current tasks", strconv.Itoa(st.CurrentTasks)},
				{"tasks completed", strconv.Itoa(st.TasksCompleted)},
				{"departments", strconv.Itoa(st.Departments)},
			}
			return writeRecord(cmd, app, st, kv)
		},
	}
}
