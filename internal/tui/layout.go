package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// fitPane forces s to exactly width columns (ANSI-aware) and height lines so
// panes joined with lipgloss.JoinHorizontal line up. Zero height keeps the
// line count.
func fitPane(s string, width, height int) string {
	width = max(width, 0)
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	if w > width {
		switch {
		case width <= 0:
			return ""
		case width == 1:
			ln = xansi.Cut(ln, 0, 1)
		default:
			ln = xansi.Cut(ln, 0, width-1) + "…"
		}
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// truncate cuts a plain cell value to width columns.
func truncate(s string, width int) string {
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return xansi.Cut(s, 0, max(width, 0))
	}
	return xansi.Cut(s, 0, width-1) + "…"
}

func splitPanes(left, right string, width, height int) string {
	if width < 100 {
		return left + "\n\n" + right
	}
	lw := width * 3 / 5
	rw := width - lw - 2
	return lipgloss.JoinHorizontal(lipgloss.Top, fitPane(left, lw, height), "  ", fitPane(right, rw, height))
}

func section(title string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorChromeFg).Render(title)
}
