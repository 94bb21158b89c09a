package form

import (
	"strings"
	"time"

	"taskflow/internal/store"

	"github.com/google/uuid"
)

type SignInDraft struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (d *SignInDraft) Fields(store.Directory) []Field {
	return []Field{
		{Key: "email", Label: "Email", Required: "Please enter your email", Invalid: "Please enter a valid email"},
		{Key: "password", Label: "Password", Kind: Password, Required: "Please enter your password"},
	}
}

func (d *SignInDraft) bind() map[string]*string {
	return map[string]*string{"email": &d.Email, "password": &d.Password}
}

func (d *SignInDraft) Value(key string) string { return get(d.bind(), key) }

func (d *SignInDraft) SetValue(key, v string) { set(d.bind(), key, v) }

type SignUpDraft struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	Terms           string `form:"terms" validate:"required,eq=true"`
}

func (d *SignUpDraft) Fields(store.Directory) []Field {
	return []Field{
		{Key: "name", Label: "Full Name", Required: "Please enter your name"},
		{Key: "email", Label: "Email", Required: "Please enter your email", Invalid: "Please enter a valid email"},
		{Key: "password", Label: "Password", Kind: Password, Required: "Please enter a password", Invalid: "Password must be at least 8 characters"},
		{Key: "confirm_password", Label: "Confirm Password", Kind: Password, Required: "Please confirm your password", Invalid: "Passwords do not match"},
		{Key: "terms", Label: "I agree to the Terms and Privacy Policy", Kind: Checkbox, Required: "Please accept the terms", Invalid: "Please accept the terms"},
	}
}

func (d *SignUpDraft) bind() map[string]*string {
	return map[string]*string{
		"name": &d.Name, "email": &d.Email, "password": &d.Password,
		"confirm_password": &d.ConfirmPassword, "terms": &d.Terms,
	}
}

func (d *SignUpDraft) Value(key string) string { return get(d.bind(), key) }

// SetValue keeps passwords verbatim; every other field is trimmed.
func (d *SignUpDraft) SetValue(key, v string) {
	switch key {
	case "password":
		d.Password = v
	case "confirm_password":
		d.ConfirmPassword = v
	default:
		set(d.bind(), key, v)
	}
}

// Session is the signed-in user of one TUI run. There is no account backend:
// any well-formed sign-in is accepted and nothing outlives the process.
type Session struct {
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Email   string    `json:"email" yaml:"email"`
	Started time.Time `json:"started" yaml:"started"`
}

func NewSession(name, email string, now time.Time) Session {
	email = strings.TrimSpace(email)
	if name = strings.TrimSpace(name); name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return Session{ID: uuid.NewString(), Name: name, Email: email, Started: now}
}
