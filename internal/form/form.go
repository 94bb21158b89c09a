// Package form implements the create/edit modal shared by every entity view:
// a draft bound to a list of field definitions, validated with struct tags on
// submit.
package form

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"taskflow/internal/store"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	}
	return "closed"
}

type Kind int

const (
	Text Kind = iota
	TextArea
	Number
	Date
	Password
	Select
	MultiSelect
	Checkbox
)

type Option struct {
	Value string
	Label string
}

// Field describes one input of a draft. Required is the message shown when the
// field is empty; Invalid is shown for every other failed rule.
type Field struct {
	Key      string
	Label    string
	Kind     Kind
	Options  []Option
	Required string
	Invalid  string
}

// Draft is the editable, all-strings form of a record.
type Draft interface {
	Fields(dir store.Directory) []Field
	Value(key string) string
	SetValue(key, value string)
}

// FieldErrors maps field keys to the message shown under them.
type FieldErrors map[string]string

func (fe FieldErrors) Keys() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field errors under the form key instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks d's struct tags and returns the failures keyed by field.
// A nil result means d is valid.
func Validate(d Draft, dir store.Directory) FieldErrors {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	defs := map[string]Field{}
	for _, f := range d.Fields(dir) {
		defs[f.Key] = f
	}
	out := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		key := fe.Field()
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = message(defs[key], fe.Tag())
	}
	return out
}

func message(f Field, tag string) string {
	if tag == "required" && f.Required != "" {
		return f.Required
	}
	if f.Invalid != "" {
		return f.Invalid
	}
	if f.Required != "" {
		return f.Required
	}
	return "Please enter a valid " + strings.ToLower(f.Label)
}

// Modal is the closed/creating/editing state machine around one draft type.
type Modal[D Draft] struct {
	name  string
	mode  Mode
	id    string
	draft D
	errs  FieldErrors
	log   *zap.Logger
}

func NewModal[D Draft](name string, log *zap.Logger) *Modal[D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Modal[D]{name: name, log: log}
}

func (m *Modal[D]) OpenCreate(empty D) {
	m.mode, m.id, m.draft, m.errs = Creating, "", empty, nil
}

func (m *Modal[D]) OpenEdit(id string, draft D) {
	m.mode, m.id, m.draft, m.errs = Editing, id, draft, nil
}

// Cancel discards the draft without touching the store.
func (m *Modal[D]) Cancel() {
	var zero D
	m.mode, m.id, m.draft, m.errs = Closed, "", zero, nil
}

func (m *Modal[D]) Mode() Mode          { return m.mode }
func (m *Modal[D]) Open() bool          { return m.mode != Closed }
func (m *Modal[D]) ID() string          { return m.id }
func (m *Modal[D]) Draft() D            { return m.draft }
func (m *Modal[D]) Errors() FieldErrors { return m.errs }

// Set updates one draft field and clears its error.
func (m *Modal[D]) Set(key, value string) {
	if !m.Open() {
		return
	}
	m.draft.SetValue(key, value)
	delete(m.errs, key)
}

// Submit validates the draft. On failure the modal stays open with field
// errors populated and the failure is logged; commit is not called. On success
// commit receives the mode, the edited id (empty when creating) and the draft,
// and the modal closes.
func (m *Modal[D]) Submit(dir store.Directory, commit func(mode Mode, id string, draft D)) bool {
	if !m.Open() {
		return false
	}
	if errs := Validate(m.draft, dir); len(errs) > 0 {
		m.errs = errs
		m.log.Info("form validation failed",
			zap.String("form", m.name),
			zap.String("mode", m.mode.String()),
			zap.Strings("fields", errs.Keys()),
		)
		return false
	}
	commit(m.mode, m.id, m.draft)
	m.Cancel()
	return true
}
