package tui

import (
	"strings"
	"sync/atomic"

	"taskflow/internal/style"
)

// glyphSet holds the characters used for cursors, rules, checkboxes and
// progress bars. The ascii set is for fonts without box-drawing glyphs.
type glyphSet struct {
	name        string
	cursor      string
	sep         string
	hrule       string
	on, off     string
	fill, empty string
}

var (
	glyphSetUnicode = &glyphSet{name: "unicode", cursor: "▸", sep: "│", hrule: "─", on: "☑", off: "☐", fill: "█", empty: "░"}
	glyphSetASCII   = &glyphSet{name: "ascii", cursor: ">", sep: "|", hrule: "-", on: "[x]", off: "[ ]", fill: "#", empty: "."}
)

var currentGlyphs atomic.Pointer[glyphSet]

func (g *glyphSet) String() string { return g.name }

// applyGlyphPreference switches glyph sets; unknown values are ignored.
func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(g *glyphSet) {
	currentGlyphs.Store(g)
	style.ASCII = g == glyphSetASCII
}

func glyphs() *glyphSet {
	if g := currentGlyphs.Load(); g != nil {
		return g
	}
	return glyphSetUnicode
}

func glyphCursor() string { return glyphs().cursor }
func glyphSep() string    { return glyphs().sep }
func glyphHRule() string  { return glyphs().hrule }

func glyphCheck(on bool) string {
	if on {
		return glyphs().on
	}
	return glyphs().off
}

// glyphBar draws pct (clamped to 0..100) as a bar width cells wide.
func glyphBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	g := glyphs()
	full := max(0, min(pct, 100)) * width / 100
	return strings.Repeat(g.fill, full) + strings.Repeat(g.empty, width-full)
}
