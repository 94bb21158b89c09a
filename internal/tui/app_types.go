package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewSignIn view = iota
	viewSignUp
	viewDashboard
	viewProjects
	viewTeam
	viewTasks
	viewProgress
	viewSchedule
	viewIssues
)

// menu is the sidebar order; view i+1 is bound to key "i+1".
var menu = []view{viewDashboard, viewProjects, viewTeam, viewTasks, viewProgress, viewSchedule, viewIssues}

var viewNames = map[view]string{
	viewSignIn:    "signin",
	viewSignUp:    "signup",
	viewDashboard: "dashboard",
	viewProjects:  "projects",
	viewTeam:      "team",
	viewTasks:     "tasks",
	viewProgress:  "progress",
	viewSchedule:  "schedule",
	viewIssues:    "issues",
}

func (v view) String() string { return viewNames[v] }

func (v view) title() string {
	switch v {
	case viewSignIn:
		return "Sign in"
	case viewSignUp:
		return "Create account"
	}
	s := viewNames[v]
	return strings.ToUpper(s[:1]) + s[1:]
}

// parseView maps a configured start view name; unknown names fall back to
// sign-in.
func parseView(s string) view {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range viewNames {
		if name == s {
			return v
		}
	}
	return viewSignIn
}

// screen is one routed view. Views only share the app's DB handle and
// session.
type screen interface {
	update(m *appModel, msg tea.KeyMsg) tea.Cmd
	render(m *appModel) string
	help() string
}

// advance returns the value after cur in all, wrapping around.
func advance[S comparable](all []S, cur S) S {
	for i, s := range all {
		if s == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
