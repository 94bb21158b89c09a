package cli

import (
	"fmt"
	"strings"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type invalidFilterError struct {
	flag    string
	value   string
	options []string
}

func (e invalidFilterError) Error() string {
	if len(e.options) == 0 {
		return fmt.Sprintf("invalid --%s %q", e.flag, e.value)
	}
	return fmt.Sprintf("invalid --%s %q (want one of: all, %s)", e.flag, e.value, strings.Join(e.options, ", "))
}
