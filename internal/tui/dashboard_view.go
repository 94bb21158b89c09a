package tui

import (
	"fmt"
	"strconv"
	"strings"

	"taskflow/internal/stats"
	"taskflow/internal/style"

	tea "github.com/charmbracelet/bubbletea"
)

// dashboardView is read-only; every number comes from stats.Dashboard.
type dashboardView struct{}

func (v *dashboardView) update(*appModel, tea.KeyMsg) tea.Cmd { return nil }

func (v *dashboardView) render(m *appModel) string {
	db := m.db
	w := m.bodyWidth()
	now := db.Now()
	st := stats.Dashboard(stats.DashboardInput{
		Projects:      db.Projects.All(),
		Tasks:         db.Tasks.All(),
		Issues:        db.Issues.All(),
		Members:       db.Members.All(),
		Notifications: db.Notifications.All(),
	}, now)

	cards := renderStatCards(w,
		statCard{"Active Projects", strconv.Itoa(st.ActiveProjects)},
		statCard{"Tasks In Progress", strconv.Itoa(st.TasksInProgress)},
		statCard{"Completed Tasks", strconv.Itoa(st.CompletedTasks)},
		statCard{"Team Members", strconv.Itoa(st.TeamMembers)},
	)
	alerts := fmt.Sprintf("%d overdue tasks %s %d open issues %s %d unread notifications",
		st.OverdueTasks, glyphSep(), st.OpenIssues, glyphSep(), st.Unread)

	var dist []string
	dist = append(dist, section("Task distribution"))
	total := 0
	for _, c := range st.TaskDistribution {
		total += c.Count
	}
	for _, c := range st.TaskDistribution {
		pct := 0
		if total > 0 {
			pct = stats.Round(float64(c.Count) / float64(total) * 100)
		}
		dist = append(dist, fmt.Sprintf("%-14s %s %d", plain(style.TaskStatus, string(c.Status)), glyphBar(pct, 20), c.Count))
	}

	var projects []string
	projects = append(projects, section("Project progress"))
	for _, p := range db.Projects.All() {
		projects = append(projects, fmt.Sprintf("%-26s %s %3d%%  %s",
			truncate(p.Name, 26), glyphBar(p.Progress, 12), p.Progress, paint(style.ProjectStatus, string(p.Status))))
	}

	var deadlines []string
	deadlines = append(deadlines, section("Upcoming deadlines"))
	upcoming := stats.UpcomingDeadlines(db.Events.All(), now)
	if len(upcoming) == 0 {
		deadlines = append(deadlines, styleMuted().Render("Nothing due."))
	}
	for _, e := range upcoming {
		deadlines = append(deadlines, fmt.Sprintf("%s  %s  %s",
			e.Date.Format(displayDate), e.Title, styleMuted().Render(db.Directory().ProjectName(e.ProjectID))))
	}

	var notes []string
	notes = append(notes, section("Unread notifications"))
	for _, n := range stats.SortNotifications(db.Notifications.All()) {
		if n.Read {
			continue
		}
		notes = append(notes, paint(style.NotificationType, string(n.Type))+"  "+n.Title,
			"  "+styleMuted().Render(n.Message))
	}
	if len(notes) == 1 {
		notes = append(notes, styleMuted().Render("All caught up."))
	}

	left := strings.Join(dist, "\n") + "\n\n" + strings.Join(projects, "\n")
	right := strings.Join(deadlines, "\n") + "\n\n" + strings.Join(notes, "\n")
	return cards + "\n" + styleMuted().Render(alerts) + "\n\n" + splitPanes(left, right, w, 0)
}

func (v *dashboardView) help() string { return "" }
