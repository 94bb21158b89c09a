package tui

import (
	"strconv"
	"strings"

	"taskflow/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}
	m.flash = ""

	switch {
	case m.confirm != nil:
		switch k {
		case "y", "Y":
			c := m.confirm
			m.confirm = nil
			c.onYes(&m)
		case "n", "N", "esc":
			m.confirm = nil
		}
		return m, nil

	case m.prompt != nil:
		switch k {
		case "esc":
			m.prompt = nil
			return m, nil
		case "enter":
			p := m.prompt
			m.prompt = nil
			p.onSubmit(&m, p.input.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt.input, cmd = m.prompt.input.Update(msg)
		return m, cmd

	case m.modal != nil:
		return m.updateModal(msg)
	}

	if m.view != viewSignIn && m.view != viewSignUp {
		switch k {
		case "q":
			return m, tea.Quit
		case "L":
			m.signOut()
			return m, nil
		}
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(menu) {
			m.switchTo(menu[n-1])
			return m, nil
		}
	}
	cmd := m.screens[m.view].update(&m, msg)
	return m, cmd
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fm := m.modal
	auth, isAuth := m.screens[m.view].(authScreen)
	if !isAuth {
		done, cmd := fm.update(msg)
		if done {
			m.modal = nil
			if fm.saved {
				m.flash = fm.title + ": saved"
			}
		}
		return m, cmd
	}

	// Auth forms stay up until a session exists.
	switch msg.String() {
	case "esc":
		if m.view == viewSignUp {
			m.switchTo(viewSignIn)
		}
		return m, nil
	case "ctrl+n", "ctrl+b":
		return m, m.screens[m.view].update(&m, msg)
	}
	done, cmd := fm.update(msg)
	if done {
		if s, ok := auth.take(); ok {
			m.signIn(s)
		} else {
			m.modal = auth.open(m.db)
		}
	}
	return m, cmd
}

// author is the team member the session acts as, matched by email. Sessions
// without a matching member comment anonymously.
func (m *appModel) author() model.MemberID {
	if m.session == nil {
		return ""
	}
	for _, mem := range m.db.Members.All() {
		if strings.EqualFold(mem.Email, m.session.Email) {
			return mem.ID
		}
	}
	return ""
}
