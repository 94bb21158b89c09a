package tui

import (
	"fmt"
	"strconv"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type settingToggle struct {
	label string
	value func(s *config.NotificationSettings) *bool
}

var settingToggles = []settingToggle{
	{"Task assignments", func(s *config.NotificationSettings) *bool { return &s.TaskAssignments }},
	{"Deadline reminders", func(s *config.NotificationSettings) *bool { return &s.DeadlineReminders }},
	{"Project updates", func(s *config.NotificationSettings) *bool { return &s.ProjectUpdates }},
	{"Meeting reminders", func(s *config.NotificationSettings) *bool { return &s.MeetingReminders }},
	{"Email notifications", func(s *config.NotificationSettings) *bool { return &s.EmailNotifications }},
}

type scheduleView struct {
	events   *listView[model.ScheduleEvent]
	notes    *listView[model.Notification]
	settings config.NotificationSettings

	focusNotes   bool
	settingsOpen bool
	settingsCur  int
}

func newScheduleView(db *store.DB, settings config.NotificationSettings) *scheduleView {
	v := &scheduleView{settings: settings}
	dir := db.Directory()
	v.events = newListView(filter.Events(dir), 8,
		func() []model.ScheduleEvent { return stats.SortEvents(db.Events.All()) },
		[]filterKey{{"t", filter.KeyType}, {"p", filter.KeyProject}},
		column[model.ScheduleEvent]{"Date", 13, func(e model.ScheduleEvent) string { return e.Date.Format(displayDate) }},
		column[model.ScheduleEvent]{"Time", 6, func(e model.ScheduleEvent) string { return e.Time }},
		column[model.ScheduleEvent]{"Title", 28, func(e model.ScheduleEvent) string { return e.Title }},
		column[model.ScheduleEvent]{"Type", 12, func(e model.ScheduleEvent) string { return plain(style.EventType, string(e.Type)) }},
		column[model.ScheduleEvent]{"Project", 20, func(e model.ScheduleEvent) string { return db.Directory().ProjectName(e.ProjectID) }},
		column[model.ScheduleEvent]{"Status", 13, func(e model.ScheduleEvent) string { return plain(style.EventStatus, string(e.Status)) }},
	)
	v.notes = newListView(filter.NewSet[model.Notification](), 6,
		func() []model.Notification {
			var out []model.Notification
			for _, n := range stats.SortNotifications(db.Notifications.All()) {
				if v.settings.Shows(n.Type) {
					out = append(out, n)
				}
			}
			return out
		},
		nil,
		column[model.Notification]{"", 2, func(n model.Notification) string {
			if n.Read {
				return ""
			}
			return "●"
		}},
		column[model.Notification]{"Title", 28, func(n model.Notification) string { return n.Title }},
		column[model.Notification]{"Message", 44, func(n model.Notification) string { return n.Message }},
		column[model.Notification]{"When", 14, func(n model.Notification) string { return n.Timestamp.Format("Jan 02 15:04") }},
	)
	return v
}

func (v *scheduleView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if v.settingsOpen {
		v.updateSettings(m, k)
		return nil
	}
	switch k {
	case "tab":
		v.focusNotes = !v.focusNotes
		return nil
	case "o":
		v.settingsOpen = true
		v.settingsCur = 0
		return nil
	case "R":
		if n := m.db.MarkAllNotificationsRead(); n > 0 {
			m.flash = fmt.Sprintf("Marked %d notifications read", n)
		}
		return nil
	}
	if v.focusNotes {
		if v.notes.handleKey(k) {
			return nil
		}
		if k == "r" {
			if n, ok := v.notes.selected(); ok && !n.Read && m.db.MarkNotificationRead(n.ID) {
				m.flash = "Marked read"
			}
		}
		return nil
	}
	v.events.handleKey(k)
	return nil
}

func (v *scheduleView) updateSettings(m *appModel, k string) {
	switch k {
	case "up", "k":
		v.settingsCur = max(v.settingsCur-1, 0)
	case "down", "j":
		v.settingsCur = min(v.settingsCur+1, len(settingToggles)-1)
	case " ", "enter":
		p := settingToggles[v.settingsCur].value(&v.settings)
		*p = !*p
		v.notes.page, v.notes.cursor = 1, 0
	case "esc", "o":
		v.settingsOpen = false
		if m.opts.SaveSettings == nil {
			return
		}
		if err := m.opts.SaveSettings(v.settings); err != nil {
			m.log.Warn("save notification settings", zap.Error(err))
			m.flash = "Could not save settings: " + err.Error()
			return
		}
		m.flash = "Notification settings saved"
	}
}

func (v *scheduleView) renderSettings() string {
	lines := []string{section("Notification settings")}
	for i, t := range settingToggles {
		marker := "  "
		if i == v.settingsCur {
			marker = glyphCursor() + " "
		}
		lines = append(lines, marker+glyphCheck(*t.value(&v.settings))+" "+t.label)
	}
	return strings.Join(lines, "\n")
}

func (v *scheduleView) render(m *appModel) string {
	db := m.db
	w := m.bodyWidth()
	now := db.Now()
	st := stats.Schedule(db.Events.All(), db.Notifications.All(), now)
	cards := renderStatCards(w,
		statCard{"Total Events", strconv.Itoa(st.Events)},
		statCard{"Today", strconv.Itoa(st.Today)},
		statCard{"Upcoming Deadlines", strconv.Itoa(st.UpcomingDeadlines)},
		statCard{"Unread", fmt.Sprintf("%d of %d", st.Unread, st.Notifications)},
	)

	evTitle, noteTitle := section("Events"), section("Notifications")
	if v.focusNotes {
		noteTitle = glyphCursor() + " " + noteTitle
	} else {
		evTitle = glyphCursor() + " " + evTitle
	}
	body := evTitle + "\n" + v.events.render(db.Directory()) + "\n\n" + noteTitle + "\n" + v.notes.render(db.Directory())
	if v.settingsOpen {
		body = splitPanes(body, v.renderSettings(), w, 0)
	}
	return cards + "\n\n" + body
}

func (v *scheduleView) help() string {
	if v.settingsOpen {
		return "↑↓: move   space: toggle   o/esc: close and save"
	}
	return "tab: switch list   ↑↓: move   ←→: page   t/p: filter events   r: mark read   R: mark all read   o: settings"
}
