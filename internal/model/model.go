package model

import (
	"strings"
	"time"
)

type (
	ProjectID      string
	TaskID         string
	IssueID        string
	MemberID       string
	EventID        string
	NotificationID string
	CommentID      string
)

// DateLayout is the on-the-wire and form-widget representation of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date kept in its ISO form (YYYY-MM-DD).
// It is only parsed when rendered or compared; an empty Date means "not set".
type Date string

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) IsZero() bool { return strings.TrimSpace(string(d)) == "" }

func (d Date) Time() (time.Time, bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(string(d)))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders the date with layout. Unparseable values are returned as-is.
func (d Date) Format(layout string) string {
	t, ok := d.Time()
	if !ok {
		return string(d)
	}
	return t.Format(layout)
}

// DaysFrom returns the number of whole calendar days from today's date to d.
// Negative values mean d is in the past.
func (d Date) DaysFrom(today time.Time) (int, bool) {
	t, ok := d.Time()
	if !ok {
		return 0, false
	}
	y, m, dd := today.Date()
	base := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(base).Hours() / 24), true
}

// Before reports whether d falls on a calendar day before today.
func (d Date) Before(today time.Time) bool {
	n, ok := d.DaysFrom(today)
	return ok && n < 0
}

// SameDay reports whether d is the calendar day of t.
func (d Date) SameDay(t time.Time) bool {
	n, ok := d.DaysFrom(t)
	return ok && n == 0
}

type Comment struct {
	ID        CommentID   `json:"id" yaml:"id"`
	AuthorID  MemberID    `json:"authorId" yaml:"authorId"`
	Content   string      `json:"content" yaml:"content"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
	Kind      CommentKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

func cloneComments(cs []Comment) []Comment {
	if cs == nil {
		return nil
	}
	return append([]Comment(nil), cs...)
}

func cloneStrings(xs []string) []string {
	if xs == nil {
		return nil
	}
	return append([]string(nil), xs...)
}
