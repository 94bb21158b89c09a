package tui

import (
	"fmt"
	"strconv"
	"strings"

	"taskflow/internal/filter"
	"taskflow/internal/form"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type tasksView struct {
	list   *listView[model.Task]
	form   *form.Modal[*form.TaskDraft]
	detail bool
	board  bool
}

func newTasksView(db *store.DB, size int, log *zap.Logger) *tasksView {
	v := &tasksView{form: form.NewModal[*form.TaskDraft]("task", log)}
	v.list = newListView(filter.Tasks(db.Directory()), size, db.Tasks.All,
		[]filterKey{{"f", filter.KeyStatus}, {"p", filter.KeyPriority}, {"a", filter.KeyAssignee}},
		column[model.Task]{"Title", 28, func(t model.Task) string { return t.Title }},
		column[model.Task]{"Status", 15, func(t model.Task) string { return plain(style.TaskStatus, string(t.Status)) }},
		column[model.Task]{"Priority", 12, func(t model.Task) string { return plain(style.Priority, string(t.Priority)) }},
		column[model.Task]{"Assignee", 16, func(t model.Task) string { return db.Directory().MemberName(t.AssigneeID) }},
		column[model.Task]{"Project", 20, func(t model.Task) string { return db.Directory().ProjectName(t.ProjectID) }},
		column[model.Task]{"Due", 14, func(t model.Task) string {
			due := t.DueDate.Format(displayDate)
			if stats.Overdue(t, db.Now()) {
				due = "! " + due
			}
			return due
		}},
		column[model.Task]{"Hours", 12, func(t model.Task) string {
			pct := stats.HoursProgress(t)
			return glyphBar(pct, 6) + " " + strconv.Itoa(pct) + "%"
		}},
	)
	return v
}

func (v *tasksView) openForm(db *store.DB, t *model.Task) *formModal {
	title := "New Task"
	if t == nil {
		v.form.OpenCreate(&form.TaskDraft{Status: string(model.TaskTodo), Priority: string(model.PriorityMedium)})
	} else {
		v.form.OpenEdit(string(t.ID), form.TaskDraftOf(*t))
		title = "Edit Task"
	}
	return newFormModal(title, v.form, db.Directory(), func(mode form.Mode, id string, d *form.TaskDraft) {
		if mode == form.Creating {
			var t model.Task
			d.Apply(&t)
			db.CreateTask(t)
			return
		}
		db.EditTask(model.TaskID(id), d.Apply)
	})
}

func (v *tasksView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if v.list.handleKey(k) {
		return nil
	}
	switch k {
	case "n":
		m.modal = v.openForm(m.db, nil)
		return nil
	case "b":
		v.board = !v.board
		return nil
	case "enter":
		v.detail = !v.detail
		return nil
	}

	t, ok := v.list.selected()
	if !ok {
		return nil
	}
	switch k {
	case "e":
		m.modal = v.openForm(m.db, &t)
	case "d":
		m.confirm = &confirmPrompt{
			title: "Delete task",
			body:  fmt.Sprintf("Delete %q? This cannot be undone.", t.Title),
			onYes: func(m *appModel) {
				if m.db.DeleteTask(t.ID) {
					m.flash = "Task deleted"
				}
			},
		}
	case "s":
		next := advance(model.AllTaskStatuses, t.Status)
		if m.db.SetTaskStatus(t.ID, next) {
			m.flash = fmt.Sprintf("%s → %s", t.Title, style.Label(string(next)))
		}
	case "c":
		m.prompt = newTextPrompt("Comment on "+t.Title, "Write a comment", func(m *appModel, text string) {
			if _, ok := m.db.AddTaskComment(t.ID, m.author(), text); ok {
				m.flash = "Comment added"
			}
		})
	}
	return nil
}

func (v *tasksView) render(m *appModel) string {
	w := m.bodyWidth()
	st := stats.Tasks(m.db.Tasks.All(), m.db.Now())
	cards := renderStatCards(w,
		statCard{"Total Tasks", strconv.Itoa(st.Total)},
		statCard{"In Progress", strconv.Itoa(st.InProgress)},
		statCard{"Completed", strconv.Itoa(st.Completed)},
		statCard{"Overdue", strconv.Itoa(st.Overdue)},
	)
	main := v.list.render(m.db.Directory())
	if v.board {
		main = v.list.filterBar(m.db.Directory()) + "\n\n" + renderBoard(v.list.filtered(), w)
	}
	if v.detail && !v.board {
		if t, ok := v.list.selected(); ok {
			main = splitPanes(main, renderMarkdown(taskMarkdown(t, m.db.Directory(), m.db.Now()), w*2/5), w, 0)
		}
	}
	return cards + "\n\n" + main
}

func renderBoard(ts []model.Task, width int) string {
	cols := stats.Board(ts)
	colW := max(width/len(cols)-2, 16)
	var rendered []string
	for _, c := range cols {
		lines := []string{
			lipgloss.NewStyle().Bold(true).Render(paint(style.TaskStatus, string(c.Status))) +
				styleMuted().Render(fmt.Sprintf(" (%d)", len(c.Tasks))),
			styleMuted().Render(strings.Repeat(glyphHRule(), colW)),
		}
		for _, t := range c.Tasks {
			lines = append(lines, truncate(t.Title, colW), "  "+paint(style.Priority, string(t.Priority)), "")
		}
		rendered = append(rendered, fitPane(strings.Join(lines, "\n"), colW, 0))
	}
	for i := range rendered[:len(rendered)-1] {
		rendered[i] += "  "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v *tasksView) help() string {
	if v.board {
		return "b: table   f/p/a: filter   x: reset"
	}
	return "↑↓: move   ←→: page   f/p/a: filter   x: reset   n: new   e: edit   d: delete   s: next status   c: comment   enter: details   b: board"
}
