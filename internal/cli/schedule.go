package cli

import (
	"taskflow/internal/filter"
	"taskflow/internal/format"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"

	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Events, notifications and deadlines",
	}
	cmd.AddCommand(newScheduleEventsCmd(app))
	cmd.AddCommand(newScheduleNotificationsCmd(app))
	cmd.AddCommand(newScheduleDeadlinesCmd(app))
	return cmd
}

func eventsTable(dir store.Directory) func([]model.ScheduleEvent) format.Table {
	return func(es []model.ScheduleEvent) format.Table {
		t := format.Table{Head: []string{"ID", "DATE", "TIME", "TITLE", "TYPE", "PROJECT", "STATUS"}}
		for _, e := range es {
			t.Body = append(t.Body, []string{
				string(e.ID), dateOrDash(e.Date), e.Time, e.Title, style.Label(string(e.Type)),
				dir.ProjectName(e.ProjectID), style.Label(string(e.Status)),
			})
		}
		return t
	}
}

func newScheduleEventsCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.db.Directory()
			set := filter.Events(dir)
			if err := applyFilters(set, ff, dir); err != nil {
				return writeErr(cmd, err)
			}
			return writeList(cmd, app, set, stats.SortEvents(app.db.Events.All()), eventsTable(dir))
		},
	}
	ff = addFilterFlags(cmd, filter.KeyType, filter.KeyProject)
	return cmd
}

func notificationsTable(ns []model.Notification) format.Table {
	t := format.Table{Head: []string{"ID", "WHEN", "TYPE", "TITLE", "MESSAGE", "READ"}}
	for _, n := range ns {
		read := "no"
		if n.Read {
			read = "yes"
		}
		t.Body = append(t.Body, []string{
			string(n.ID), n.Timestamp.Format("2006-01-02 15:04"), style.Label(string(n.Type)), n.Title, n.Message, read,
		})
	}
	return t
}

func newScheduleNotificationsCmd(app *App) *cobra.Command {
	var unread, all bool
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, newest first",
		Long:  "List notifications, newest first. Types switched off in the config's notification settings are hidden unless --all is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.cfg.TUI.Notifications
			var ns []model.Notification
			for _, n := range stats.SortNotifications(app.db.Notifications.All()) {
				if unread && n.Read {
					continue
				}
				if !all && !settings.Shows(n.Type) {
					continue
				}
				ns = append(ns, n)
			}
			return writeList(cmd, app, filter.NewSet[model.Notification](), ns, notificationsTable)
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "Only unread notifications")
	cmd.Flags().BoolVar(&all, "all", false, "Ignore the notification settings")
	return cmd
}

func newScheduleDeadlinesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deadlines",
		Short: "Upcoming deadline events, soonest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.db.Directory()
			es := stats.UpcomingDeadlines(app.db.Events.All(), app.db.Now())
			if es == nil {
				es = []model.ScheduleEvent{}
			}
			return writeList(cmd, app, filter.Events(dir), es, eventsTable(dir))
		},
	}
}
