package tui

import (
	"os"
	"strconv"
	"strings"

	"taskflow/internal/style"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. Everything goes through AdaptiveColor so the TUI stays
// readable on light and dark terminals.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted       lipgloss.TerminalColor = ac("240", "243")
	colorChromeFg    lipgloss.TerminalColor = ac("240", "245")
	colorSelectedBg  lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg  lipgloss.TerminalColor = ac("235", "255")
	colorSurfaceBg   lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg   lipgloss.TerminalColor = ac("235", "252")
	colorControlBg   lipgloss.TerminalColor = ac("252", "235")
	colorInputBg     lipgloss.TerminalColor = ac("254", "234")
	colorAccent      lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg    lipgloss.TerminalColor = ac("255", "235")
	colorCardBorder  lipgloss.TerminalColor = ac("250", "243")
	colorErrorFg     lipgloss.TerminalColor = ac("160", "203")
	colorModalHeadBg                        = colorControlBg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorErrorFg)
}

// paint renders a categorical value with its shared presentation: icon plus
// label, in the mapped colour. Neutral values keep the surface colour.
func paint(cat style.Category, value string) string {
	p := style.Lookup(cat, value)
	st := lipgloss.NewStyle()
	if p.Color != style.Neutral {
		st = st.Foreground(lipgloss.Color(p.Color))
	}
	return st.Render(p.Icon + " " + p.Label)
}

// plain is paint without colour, for table cells where bubbles/table applies
// its own cell styling.
func plain(cat style.Category, value string) string {
	p := style.Lookup(cat, value)
	return p.Icon + " " + p.Label
}

// applyColorProfilePreference sets Lip Gloss's colour profile. Only NO_COLOR is
// honoured; CLICOLOR handling from termenv's env profile would switch colours
// off in an interactive session.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case profile == termenv.Ascii:
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		profile = termenv.TrueColor
	case strings.Contains(term, "256color") && profile == termenv.ANSI:
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference pins background detection from the configured theme
// (light, dark, auto). On auto, COLORFGBG is consulted before leaving it to
// Lip Gloss's own probing.
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
