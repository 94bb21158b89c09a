// Package filter narrows a collection down to what a view shows: a set of
// equality selectors combined with AND, followed by display-only pagination.
package filter

import (
	"fmt"
	"slices"
	"strings"
)

// All is the sentinel selector value that matches every record.
const All = "all"

// DefaultPageSize matches the table page size used by every list view.
const DefaultPageSize = 10

type Selector[T any] struct {
	Key     string
	Label   string
	Options []string
	Value   string
	Field   func(T) string
}

func (s Selector[T]) Active() bool { return s.Value != "" && s.Value != All }

func (s Selector[T]) Match(item T) bool {
	if !s.Active() {
		return true
	}
	return s.Field(item) == s.Value
}

// Set is an ordered list of selectors; an item passes when every selector matches.
type Set[T any] struct {
	selectors []Selector[T]
}

func NewSet[T any](selectors ...Selector[T]) *Set[T] {
	s := &Set[T]{}
	for _, sel := range selectors {
		if sel.Value == "" {
			sel.Value = All
		}
		s.selectors = append(s.selectors, sel)
	}
	return s
}

// Apply returns the matching items in input order.
func (s *Set[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if s.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Set[T]) Match(item T) bool {
	for _, sel := range s.selectors {
		if !sel.Match(item) {
			return false
		}
	}
	return true
}

func (s *Set[T]) Selectors() []Selector[T] { return slices.Clone(s.selectors) }

func (s *Set[T]) Value(key string) string {
	if i := s.index(key); i >= 0 {
		return s.selectors[i].Value
	}
	return ""
}

// SetValue selects value for key. Values are matched case-insensitively against
// the selector's options; "all" and "" reset the selector.
func (s *Set[T]) SetValue(key, value string) error {
	i := s.index(key)
	if i < 0 {
		return fmt.Errorf("unknown filter %q", key)
	}
	sel := &s.selectors[i]
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, All) {
		sel.Value = All
		return nil
	}
	for _, opt := range sel.Options {
		if strings.EqualFold(opt, value) {
			sel.Value = opt
			return nil
		}
	}
	return &InvalidValueError{Key: key, Value: value, Options: sel.Options}
}

// Cycle advances key to its next option, wrapping through All.
func (s *Set[T]) Cycle(key string) string {
	i := s.index(key)
	if i < 0 {
		return ""
	}
	sel := &s.selectors[i]
	choices := append([]string{All}, sel.Options...)
	cur := slices.Index(choices, sel.Value)
	sel.Value = choices[(cur+1)%len(choices)]
	return sel.Value
}

func (s *Set[T]) Reset() {
	for i := range s.selectors {
		s.selectors[i].Value = All
	}
}

// Summary renders the active selectors, e.g. "status=open priority=high".
func (s *Set[T]) Summary() string {
	var parts []string
	for _, sel := range s.selectors {
		if sel.Active() {
			parts = append(parts, sel.Key+"="+sel.Value)
		}
	}
	if len(parts) == 0 {
		return All
	}
	return strings.Join(parts, " ")
}

func (s *Set[T]) index(key string) int {
	return slices.IndexFunc(s.selectors, func(sel Selector[T]) bool { return sel.Key == key })
}

type InvalidValueError struct {
	Key     string
	Value   string
	Options []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q (want one of: %s, %s)", e.Key, e.Value, All, strings.Join(e.Options, ", "))
}
