package tui

import (
	"fmt"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/filter"
	"taskflow/internal/form"
	"taskflow/internal/stats"
	"taskflow/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options carries the config the TUI reads at startup.
type Options struct {
	StartView     string
	PageSize      int
	Notifications config.NotificationSettings
	// SaveSettings persists notification toggles; nil keeps them in memory.
	SaveSettings func(config.NotificationSettings) error
}

type appModel struct {
	db   *store.DB
	log  *zap.Logger
	opts Options

	width  int
	height int

	view    view
	session *form.Session

	screens map[view]screen

	// Overlays, checked in this order before the active screen sees a key.
	confirm *confirmPrompt
	prompt  *textPrompt
	modal   *formModal

	flash string
}

const (
	minWidth = 60
	maxBodyW = 140
)

func newAppModel(db *store.DB, log *zap.Logger, opts Options) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = filter.DefaultPageSize
	}
	m := appModel{
		db:     db,
		log:    log,
		opts:   opts,
		width:  100,
		height: 40,
	}
	m.screens = map[view]screen{
		viewSignIn:    newSignInView(log),
		viewSignUp:    newSignUpView(log),
		viewDashboard: &dashboardView{},
		viewProjects:  newProjectsView(db, opts.PageSize, log),
		viewTeam:      newTeamView(db, opts.PageSize, log),
		viewTasks:     newTasksView(db, opts.PageSize, log),
		viewProgress:  newProgressView(db),
		viewSchedule:  newScheduleView(db, opts.Notifications),
		viewIssues:    newIssuesView(db, opts.PageSize, log),
	}
	m.switchTo(parseView(opts.StartView))
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) switchTo(v view) {
	m.view = v
	m.modal, m.confirm, m.prompt = nil, nil, nil
	if a, ok := m.screens[v].(authScreen); ok {
		m.modal = a.open(m.db)
	}
}

func (m *appModel) signIn(s form.Session) {
	m.session = &s
	m.log.Info("session started", zap.String("session", s.ID), zap.String("email", s.Email))
	m.flash = "Welcome, " + s.Name
	m.switchTo(viewDashboard)
}

func (m *appModel) signOut() {
	if m.session != nil {
		m.log.Info("session ended", zap.String("session", m.session.ID))
	}
	m.session = nil
	m.switchTo(viewSignIn)
}

func (m *appModel) bodyWidth() int {
	return max(min(m.width, maxBodyW), minWidth)
}

func (m appModel) View() string {
	w := m.bodyWidth()
	scr := m.screens[m.view]

	var body string
	switch {
	case m.confirm != nil:
		body = m.confirm.render(w)
	case m.prompt != nil:
		body = m.prompt.render(w)
	case m.modal != nil:
		body = m.modal.render(w)
	default:
		body = scr.render(&m)
	}

	if m.view == viewSignIn || m.view == viewSignUp {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderBrand(), "", body, "", m.renderFooter(scr.help()))
	}
	return strings.Join([]string{m.renderHeader(), body, m.renderFooter(scr.help())}, "\n\n")
}

func (m appModel) renderBrand() string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("TaskFlow") +
		styleMuted().Render("  project management dashboard")
}

func (m appModel) renderHeader() string {
	var tabs []string
	for i, v := range menu {
		label := fmt.Sprintf("%d %s", i+1, v.title())
		st := lipgloss.NewStyle().Padding(0, 1)
		if v == m.view {
			st = st.Foreground(colorAccentFg).Background(colorAccent).Bold(true)
		} else {
			st = st.Foreground(colorChromeFg)
		}
		tabs = append(tabs, st.Render(label))
	}
	user := "guest"
	if m.session != nil {
		user = m.session.Name
	}
	left := m.renderBrand()
	right := styleMuted().Render(user)
	if n := stats.Unread(m.db.Notifications.All()); n > 0 {
		right = lipgloss.NewStyle().Foreground(colorAccent).Render(fmt.Sprintf("%d unread", n)) + styleMuted().Render("  "+user)
	}
	gap := max(m.bodyWidth()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	top := left + strings.Repeat(" ", gap) + right
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), m.bodyWidth()))
	return top + "\n" + strings.Join(tabs, "") + "\n" + rule
}

func (m appModel) renderFooter(help string) string {
	var parts []string
	if m.flash != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorAccent).Render(m.flash))
	}
	if m.view != viewSignIn && m.view != viewSignUp {
		help += "   1-7: views   L: sign out   q: quit"
	}
	parts = append(parts, styleMuted().Render(help))
	return strings.Join(parts, "\n")
}

type statCard struct {
	label string
	value string
}

func renderStatCards(width int, cards ...statCard) string {
	if len(cards) == 0 {
		return ""
	}
	cardW := max(width/len(cards)-2, 14)
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Width(cardW)
	var rendered []string
	for _, c := range cards {
		v := lipgloss.NewStyle().Bold(true).Render(c.value)
		rendered = append(rendered, st.Render(styleMuted().Render(c.label)+"\n"+v))
	}
	// Wrap onto a second row when the cards don't fit.
	perRow := max(width/(cardW+2), 1)
	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := min(i+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return strings.Join(rows, "\n")
}
