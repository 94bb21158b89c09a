package tui

import (
	"fmt"
	"strconv"
	"strings"

	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"

	tea "github.com/charmbracelet/bubbletea"
)

type progressView struct {
	projects *filter.Set[model.ProjectProgress]
	rng      filter.TimeRange
}

func newProgressView(db *store.DB) *progressView {
	return &progressView{projects: filter.ProgressProjects(db.Directory()), rng: filter.RangeWeek}
}

func (v *progressView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "p":
		v.projects.Cycle(filter.KeyProject)
	case "r":
		v.rng = v.rng.Next()
	case "x":
		v.projects.Reset()
		v.rng = filter.RangeWeek
	}
	return nil
}

func (v *progressView) input(db *store.DB) stats.ProgressInput {
	in := stats.ProgressInput{
		Projects:    db.ProjectProgress.All(),
		Tasks:       db.TaskProgress.All(),
		Performance: db.Performance.All(),
		Deadlines:   db.Deadlines.All(),
	}
	return filter.ScopeProgress(in, v.projects, v.rng, db.Now())
}

func (v *progressView) render(m *appModel) string {
	db := m.db
	dir := db.Directory()
	now := db.Now()
	w := m.bodyWidth()
	in := v.input(db)
	st := stats.Progress(in, now)

	bar := fmt.Sprintf("%s Project: %s   %s Range: %s",
		styleMuted().Render("[p]"),
		filter.DisplayValue(dir, filter.KeyProject, v.projects.Value(filter.KeyProject)),
		styleMuted().Render("[r]"),
		string(v.rng))

	cards := renderStatCards(w,
		statCard{"Projects On Track", fmt.Sprintf("%d/%d", st.OnTrack, st.Projects)},
		statCard{"Active Tasks", fmt.Sprintf("%d (%d overdue)", st.ActiveTasks, st.OverdueTasks)},
		statCard{"Average Progress", strconv.Itoa(st.AverageProgress) + "%"},
		statCard{"Due This Week", fmt.Sprintf("%d (%d overdue)", st.DueThisWeek, st.OverdueDeadlines)},
	)

	var left []string
	left = append(left, section("Projects"))
	for _, p := range in.Projects {
		left = append(left,
			fmt.Sprintf("%-24s %s %3d%%  %s", truncate(dir.ProjectName(p.ProjectID), 24), glyphBar(p.Progress, 12), p.Progress, paint(style.Health, string(p.Health))),
			styleMuted().Render(fmt.Sprintf("  %d/%d tasks %s team of %d %s due %s",
				p.TasksCompleted, p.TotalTasks, glyphSep(), p.TeamSize, glyphSep(), p.Deadline.Format(displayDate))),
		)
	}
	left = append(left, "", section("Tasks"))
	for _, t := range in.Tasks {
		left = append(left,
			fmt.Sprintf("%-24s %s %3d%%  %s", truncate(t.Title, 24), glyphBar(t.Progress, 12), t.Progress, paint(style.Health, string(t.Health))),
			styleMuted().Render(fmt.Sprintf("  %s %s %s %s due %s",
				dir.MemberName(t.AssigneeID), glyphSep(), style.Label(string(t.Priority)), glyphSep(), t.Deadline.Format(displayDate))),
		)
	}
	if len(in.Projects) == 0 && len(in.Tasks) == 0 {
		left = append(left, styleMuted().Render("No progress data for this selection."))
	}

	var right []string
	right = append(right, section("Deadline alerts"))
	critical := stats.CriticalDeadlines(in.Deadlines, now)
	if len(critical) == 0 {
		right = append(right, styleMuted().Render("No critical deadlines."))
	}
	for _, d := range critical {
		right = append(right, paint(style.DeadlineStatus, string(d.Status(now)))+"  "+d.Title+
			styleMuted().Render(" "+deadlineDistance(d.DaysRemaining(now))))
	}
	right = append(right, "", section("Timeline"))
	timeline := stats.Timeline(in.Deadlines, now)
	if len(timeline) == 0 {
		right = append(right, styleMuted().Render("No upcoming deadlines in range."))
	}
	for _, d := range timeline {
		right = append(right, fmt.Sprintf("%s  %s %s", d.Date.Format(displayDate), d.Title,
			styleMuted().Render("("+style.Label(string(d.Kind))+")")))
	}
	right = append(right, "", section("Team performance"))
	for _, p := range in.Performance {
		right = append(right, fmt.Sprintf("%-16s %s %3d%% on time", truncate(dir.MemberName(p.MemberID), 16), glyphBar(p.OnTimeDelivery, 10), p.OnTimeDelivery),
			styleMuted().Render(fmt.Sprintf("  %d done %s %d in progress %s %.1f days avg", p.TasksCompleted, glyphSep(), p.TasksInProgress, glyphSep(), p.AverageCompletionDays)))
	}
	right = append(right, styleMuted().Render(fmt.Sprintf("Team on-time delivery %d%% %s %.1f days average completion",
		st.OnTimeDelivery, glyphSep(), st.AverageCompletionDays)))

	return bar + "\n\n" + cards + "\n\n" + splitPanes(strings.Join(left, "\n"), strings.Join(right, "\n"), w, 0)
}

func deadlineDistance(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("overdue by %d days", -days)
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}

func (v *progressView) help() string {
	return "p: project   r: time range   x: reset"
}
