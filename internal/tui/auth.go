package tui

import (
	"taskflow/internal/form"
	"taskflow/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// authScreen is a view that is nothing but a form: its modal is opened when
// the view is entered and a successful submit yields a session.
type authScreen interface {
	open(db *store.DB) *formModal
	take() (form.Session, bool)
}

type signInView struct {
	form    *form.Modal[*form.SignInDraft]
	session *form.Session
}

func newSignInView(log *zap.Logger) *signInView {
	return &signInView{form: form.NewModal[*form.SignInDraft]("signin", log)}
}

func (v *signInView) open(db *store.DB) *formModal {
	v.session = nil
	v.form.OpenCreate(&form.SignInDraft{})
	return newFormModal("Sign in to TaskFlow", v.form, db.Directory(), func(_ form.Mode, _ string, d *form.SignInDraft) {
		s := form.NewSession("", d.Email, db.Now())
		v.session = &s
	})
}

func (v *signInView) take() (form.Session, bool) {
	if v.session == nil {
		return form.Session{}, false
	}
	s := *v.session
	v.session = nil
	return s, true
}

func (v *signInView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+n" {
		m.switchTo(viewSignUp)
	}
	return nil
}

// render is only reached between a submit and the switch to the dashboard.
func (v *signInView) render(*appModel) string { return "" }

func (v *signInView) help() string {
	return "enter: sign in   ctrl+n: create account   ctrl+c: quit"
}

type signUpView struct {
	form    *form.Modal[*form.SignUpDraft]
	session *form.Session
}

func newSignUpView(log *zap.Logger) *signUpView {
	return &signUpView{form: form.NewModal[*form.SignUpDraft]("signup", log)}
}

func (v *signUpView) open(db *store.DB) *formModal {
	v.session = nil
	v.form.OpenCreate(&form.SignUpDraft{})
	return newFormModal("Create your account", v.form, db.Directory(), func(_ form.Mode, _ string, d *form.SignUpDraft) {
		s := form.NewSession(d.Name, d.Email, db.Now())
		v.session = &s
	})
}

func (v *signUpView) take() (form.Session, bool) {
	if v.session == nil {
		return form.Session{}, false
	}
	s := *v.session
	v.session = nil
	return s, true
}

func (v *signUpView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+b" {
		m.switchTo(viewSignIn)
	}
	return nil
}

func (v *signUpView) render(*appModel) string { return "" }

func (v *signUpView) help() string {
	return "space: accept terms   enter: create account   ctrl+b/esc: back to sign in"
}
