package tui

import (
	"fmt"
	"strings"

	"taskflow/internal/filter"
	"taskflow/internal/store"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type column[T any] struct {
	title string
	width int
	cell  func(T) string
}

// filterKey binds a key to cycling one selector of the view's filter set.
type filterKey struct {
	key      string
	selector string
}

// listView is the filter bar, paginated table and cursor shared by every
// entity view.
type listView[T any] struct {
	filters *filter.Set[T]
	keys    []filterKey
	columns []column[T]
	items   func() []T

	page   int
	size   int
	cursor int
}

func newListView[T any](filters *filter.Set[T], size int, items func() []T, keys []filterKey, cols ...column[T]) *listView[T] {
	return &listView[T]{filters: filters, keys: keys, columns: cols, items: items, page: 1, size: size}
}

func (v *listView[T]) filtered() []T { return v.filters.Apply(v.items()) }

func (v *listView[T]) visible() ([]T, filter.PageInfo) {
	rows, info := filter.Page(v.filtered(), v.page, v.size)
	v.page = info.Page
	if v.cursor >= len(rows) {
		v.cursor = len(rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	return rows, info
}

func (v *listView[T]) selected() (T, bool) {
	rows, _ := v.visible()
	if len(rows) == 0 {
		var zero T
		return zero, false
	}
	return rows[v.cursor], true
}

// handleKey applies navigation, paging and filter keys. It reports whether the
// key was consumed.
func (v *listView[T]) handleKey(k string) bool {
	switch k {
	case "up", "k":
		v.cursor--
	case "down", "j":
		v.cursor++
	case "left", "[":
		v.page--
		v.cursor = 0
	case "right", "]":
		v.page++
		v.cursor = 0
	case "x":
		v.filters.Reset()
		v.page, v.cursor = 1, 0
	default:
		for _, fk := range v.keys {
			if fk.key == k {
				v.filters.Cycle(fk.selector)
				v.page, v.cursor = 1, 0
				return true
			}
		}
		return false
	}
	v.visible()
	return true
}

func (v *listView[T]) filterBar(dir store.Directory) string {
	var parts []string
	for _, fk := range v.keys {
		for _, sel := range v.filters.Selectors() {
			if sel.Key != fk.selector {
				continue
			}
			val := filter.DisplayValue(dir, sel.Key, sel.Value)
			st := lipgloss.NewStyle()
			if sel.Active() {
				st = st.Foreground(colorAccent).Bold(true)
			}
			parts = append(parts, styleMuted().Render("["+fk.key+"] ")+sel.Label+": "+st.Render(val))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "   ")
}

func (v *listView[T]) render(dir store.Directory) string {
	rows, info := v.visible()
	var b strings.Builder
	if bar := v.filterBar(dir); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n\n")
	}
	if info.Total == 0 {
		b.WriteString(styleMuted().Render("No records match the current filters."))
		return b.String()
	}

	cols := make([]table.Column, len(v.columns))
	for i, c := range v.columns {
		cols[i] = table.Column{Title: c.title, Width: c.width}
	}
	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		row := make(table.Row, len(v.columns))
		for j, c := range v.columns {
			row[j] = truncate(c.cell(r), c.width)
		}
		trows[i] = row
	}

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorCardBorder).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(trows),
		table.WithHeight(len(trows)+2),
		table.WithFocused(true),
		table.WithStyles(st),
	)
	t.SetCursor(v.cursor)
	b.WriteString(t.View())
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf("page %d/%d %s %d records", info.Page, info.Pages, glyphSep(), info.Total)))
	return b.String()
}
