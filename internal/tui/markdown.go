package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type rendererKey struct {
	style string
	width int
}

// markdownCache keeps one glamour renderer per style and wrap width.
// Building one with WithAutoStyle queries the terminal each time.
type markdownCache struct {
	mu sync.Mutex
	m  map[rendererKey]*glamour.TermRenderer
}

var detailMarkdown = &markdownCache{m: map[rendererKey]*glamour.TermRenderer{}}

func (c *markdownCache) get(k rendererKey) (*glamour.TermRenderer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.m[k]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(k.style), glamour.WithWordWrap(k.width))
	if err != nil {
		return nil, err
	}
	c.m[k] = r
	return r, nil
}

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// renderMarkdown renders a detail pane body wrapped at width; on any
// rendering error the raw text is shown.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	r, err := detailMarkdown.get(rendererKey{style: markdownStyle(), width: max(width, 10)})
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
