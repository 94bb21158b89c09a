package cli

import (
	"strconv"

	"taskflow/internal/format"
	"taskflow/internal/stats"
	"taskflow/internal/style"

	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summary across projects, tasks, issues and the team",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := app.db
			st := stats.Dashboard(stats.DashboardInput{
				Projects:      db.Projects.All(),
				Tasks:         db.Tasks.All(),
				Issues:        db.Issues.All(),
				Members:       db.Members.All(),
				Notifications: db.Notifications.All(),
			}, db.Now())
			kv := format.KV{
				{"active projects", strconv.Itoa(st.ActiveProjects)},
				{"tasks in progress", strconv.Itoa(st.TasksInProgress)},
				{"completed tasks", strconv.Itoa(st.CompletedTasks)},
				{"team members", strconv.Itoa(st.TeamMembers)},
				{"overdue tasks", strconv.Itoa(st.OverdueTasks)},
				{"open issues", strconv.Itoa(st.OpenIssues)},
				{"unread notifications", strconv.Itoa(st.Unread)},
			}
			for _, c := range st.TaskDistribution {
				kv = append(kv, [2]string{"tasks " + style.Label(string(c.Status)), strconv.Itoa(c.Count)})
			}
			return writeRecord(cmd, app, st, kv)
		},
	}
}
