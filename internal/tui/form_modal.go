package tui

import (
	"slices"
	"strings"

	"taskflow/internal/form"
	"taskflow/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formModal drives a form.Modal from key presses. It erases the draft type so
// the app can hold any entity's form in one slot.
type formModal struct {
	title  string
	fields func() []form.Field
	value  func(key string) string
	set    func(key, value string)
	errors func() form.FieldErrors
	submit func() bool
	cancel func()

	focus int
	opt   int // option cursor inside a multi-select
	input textinput.Model
	saved bool
}

func newFormModal[D form.Draft](title string, m *form.Modal[D], dir store.Directory, commit func(form.Mode, string, D)) *formModal {
	fm := &formModal{
		title:  title,
		fields: func() []form.Field { return m.Draft().Fields(dir) },
		value:  func(key string) string { return m.Draft().Value(key) },
		set:    m.Set,
		errors: m.Errors,
		submit: func() bool { return m.Submit(dir, commit) },
		cancel: m.Cancel,
	}
	fm.input = textinput.New()
	fm.input.Prompt = ""
	fm.input.CharLimit = 500
	fm.focusField(0)
	return fm
}

func isTextKind(k form.Kind) bool {
	switch k {
	case form.Text, form.TextArea, form.Number, form.Date, form.Password:
		return true
	}
	return false
}

func (fm *formModal) current() (form.Field, bool) {
	fs := fm.fields()
	if len(fs) == 0 {
		return form.Field{}, false
	}
	fm.focus = max(0, min(fm.focus, len(fs)-1))
	return fs[fm.focus], true
}

func (fm *formModal) focusField(i int) {
	fs := fm.fields()
	if len(fs) == 0 {
		return
	}
	n := len(fs)
	fm.focus = ((i % n) + n) % n
	f := fs[fm.focus]
	fm.opt = 0
	if !isTextKind(f.Kind) {
		fm.input.Blur()
		return
	}
	fm.input.EchoMode = textinput.EchoNormal
	if f.Kind == form.Password {
		fm.input.EchoMode = textinput.EchoPassword
	}
	fm.input.Placeholder = f.Label
	fm.input.SetValue(fm.value(f.Key))
	fm.input.CursorEnd()
	fm.input.Focus()
}

func (fm *formModal) focusKey(key string) {
	for i, f := range fm.fields() {
		if f.Key == key {
			fm.focusField(i)
			return
		}
	}
}

func cycleOption(opts []form.Option, cur string, delta int) string {
	if len(opts) == 0 {
		return cur
	}
	i := slices.IndexFunc(opts, func(o form.Option) bool { return o.Value == cur })
	if i < 0 {
		if delta < 0 {
			return opts[len(opts)-1].Value
		}
		return opts[0].Value
	}
	n := len(opts)
	return opts[((i+delta)%n+n)%n].Value
}

func toggleListValue(list, v string) string {
	vals := form.SplitList(list)
	if i := slices.Index(vals, v); i >= 0 {
		vals = slices.Delete(vals, i, i+1)
	} else {
		vals = append(vals, v)
	}
	return strings.Join(vals, ", ")
}

// update handles one key. done is true once the modal closed, either by a
// successful submit or by cancel.
func (fm *formModal) update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	f, ok := fm.current()
	if !ok {
		return false, nil
	}
	switch msg.String() {
	case "esc":
		fm.cancel()
		return true, nil
	case "enter", "ctrl+s":
		if fm.submit() {
			fm.saved = true
			return true, nil
		}
		if keys := fm.errors().Keys(); len(keys) > 0 {
			fm.focusKey(firstInOrder(fm.fields(), keys))
		}
		return false, nil
	case "tab", "down":
		fm.focusField(fm.focus + 1)
		return false, nil
	case "shift+tab", "up":
		fm.focusField(fm.focus - 1)
		return false, nil
	}

	switch f.Kind {
	case form.Select:
		switch msg.String() {
		case "right", " ", "l":
			fm.set(f.Key, cycleOption(f.Options, fm.value(f.Key), 1))
		case "left", "h":
			fm.set(f.Key, cycleOption(f.Options, fm.value(f.Key), -1))
		}
		return false, nil
	case form.MultiSelect:
		switch msg.String() {
		case "right", "l":
			fm.opt = min(fm.opt+1, len(f.Options)-1)
		case "left", "h":
			fm.opt = max(fm.opt-1, 0)
		case " ":
			if fm.opt < len(f.Options) {
				fm.set(f.Key, toggleListValue(fm.value(f.Key), f.Options[fm.opt].Value))
			}
		}
		return false, nil
	case form.Checkbox:
		if msg.String() == " " {
			next := "true"
			if fm.value(f.Key) == "true" {
				next = ""
			}
			fm.set(f.Key, next)
		}
		return false, nil
	}

	fm.input, cmd = fm.input.Update(msg)
	fm.set(f.Key, fm.input.Value())
	return false, cmd
}

func firstInOrder(fs []form.Field, keys []string) string {
	for _, f := range fs {
		if slices.Contains(keys, f.Key) {
			return f.Key
		}
	}
	return ""
}

func optionLabel(opts []form.Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

func (fm *formModal) render(width int) string {
	bodyW := modalBodyWidth(width)
	errs := fm.errors()
	labelSt := lipgloss.NewStyle().Bold(true)
	var lines []string
	for i, f := range fm.fields() {
		focused := i == fm.focus
		marker := "  "
		if focused {
			marker = glyphCursor() + " "
		}
		label := f.Label
		if f.Required != "" {
			label += " *"
		}
		lines = append(lines, marker+labelSt.Render(label))

		val := fm.value(f.Key)
		var shown string
		switch f.Kind {
		case form.Select:
			shown = "‹ " + optionLabel(f.Options, val) + " ›"
			if val == "" {
				shown = styleMuted().Render("‹ choose ›")
			}
		case form.MultiSelect:
			chosen := form.SplitList(val)
			var opts []string
			for j, o := range f.Options {
				item := glyphCheck(slices.Contains(chosen, o.Value)) + " " + o.Label
				if focused && j == fm.opt {
					item = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(item)
				}
				opts = append(opts, item)
			}
			shown = strings.Join(opts, "  ")
		case form.Checkbox:
			shown = glyphCheck(val == "true")
		default:
			switch {
			case focused:
				shown = renderInputLine(bodyW-4, fm.input.View())
			case f.Kind == form.Password:
				shown = strings.Repeat("•", len(val))
			case val == "":
				shown = styleMuted().Render("—")
			default:
				shown = val
			}
		}
		lines = append(lines, "    "+shown)
		if msg, ok := errs[f.Key]; ok {
			lines = append(lines, "    "+styleError().Render(msg))
		}
	}
	lines = append(lines, "", styleMuted().Width(bodyW).Render("tab/↑↓: field   ←/→/space: choose   enter: save   esc: cancel"))
	return renderModalBox(width, fm.title, strings.Join(lines, "\n"))
}

func modalBodyWidth(width int) int {
	w := min(width-8, 76)
	return max(w, 30)
}

func renderModalBox(width int, title, body string) string {
	bodyW := modalBodyWidth(width)
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorModalHeadBg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Render(head + "\n\n" + body)
}

func renderInputLine(bodyW int, inputView string) string {
	bodyW = max(bodyW, 10)
	// A text input is always one visual line.
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)
	line := lipgloss.PlaceHorizontal(bodyW, lipgloss.Left, " "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	return fitLine(line, bodyW)
}

// confirmPrompt asks a yes/no question before a destructive action.
type confirmPrompt struct {
	title string
	body  string
	onYes func(m *appModel)
}

func (c *confirmPrompt) render(width int) string {
	return renderModalBox(width, c.title, c.body+"\n\n"+styleMuted().Render("y: confirm   n/esc: cancel"))
}

// textPrompt collects one line of text, e.g. a comment.
type textPrompt struct {
	title    string
	input    textinput.Model
	onSubmit func(m *appModel, text string)
}

func newTextPrompt(title, placeholder string, onSubmit func(*appModel, string)) *textPrompt {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 2000
	in.Focus()
	return &textPrompt{title: title, input: in, onSubmit: onSubmit}
}

func (p *textPrompt) render(width int) string {
	body := renderInputLine(modalBodyWidth(width)-2, p.input.View()) + "\n\n" +
		styleMuted().Render("enter: save   esc: cancel")
	return renderModalBox(width, p.title, body)
}
