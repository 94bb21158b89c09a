package tui

import (
	"fmt"
	"strconv"

	"taskflow/internal/filter"
	"taskflow/internal/form"
	"taskflow/internal/model"
	"taskflow/internal/stats"
	"taskflow/internal/store"
	"taskflow/internal/style"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type issuesView struct {
	list   *listView[model.Issue]
	form   *form.Modal[*form.IssueDraft]
	detail bool
}

func newIssuesView(db *store.DB, size int, log *zap.Logger) *issuesView {
	v := &issuesView{form: form.NewModal[*form.IssueDraft]("issue", log)}
	v.list = newListView(filter.Issues(), size, db.Issues.All,
		[]filterKey{{"f", filter.KeyStatus}, {"t", filter.KeyType}, {"p", filter.KeyPriority}},
		column[model.Issue]{"Title", 30, func(i model.Issue) string { return i.Title }},
		column[model.Issue]{"Type", 14, func(i model.Issue) string { return plain(style.IssueType, string(i.Type)) }},
		column[model.Issue]{"Status", 15, func(i model.Issue) string { return plain(style.IssueStatus, string(i.Status)) }},
		column[model.Issue]{"Priority", 12, func(i model.Issue) string { return plain(style.Priority, string(i.Priority)) }},
		column[model.Issue]{"Severity", 10, func(i model.Issue) string { return style.Label(string(i.Severity)) }},
		column[model.Issue]{"Assignee", 16, func(i model.Issue) string { return db.Directory().MemberName(i.AssigneeID) }},
		column[model.Issue]{"Created", 13, func(i model.Issue) string { return i.CreatedDate.Format(displayDate) }},
	)
	return v
}

func (v *issuesView) openForm(db *store.DB, i *model.Issue) *formModal {
	title := "Report Issue"
	if i == nil {
		v.form.OpenCreate(&form.IssueDraft{
			Type:     string(model.IssueBug),
			Status:   string(model.IssueOpen),
			Priority: string(model.PriorityMedium),
			Severity: string(model.SeverityMajor),
		})
	} else {
		v.form.OpenEdit(string(i.ID), form.IssueDraftOf(*i))
		title = "Edit Issue"
	}
	return newFormModal(title, v.form, db.Directory(), func(mode form.Mode, id string, d *form.IssueDraft) {
		if mode == form.Creating {
			var i model.Issue
			d.Apply(&i)
			db.CreateIssue(i)
			return
		}
		db.UpdateIssue(model.IssueID(id), d.Patch())
	})
}

func (v *issuesView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if v.list.handleKey(k) {
		return nil
	}
	switch k {
	case "n":
		m.modal = v.openForm(m.db, nil)
		return nil
	case "enter":
		v.detail = !v.detail
		return nil
	}

	i, ok := v.list.selected()
	if !ok {
		return nil
	}
	switch k {
	case "e":
		m.modal = v.openForm(m.db, &i)
	case "d":
		m.confirm = &confirmPrompt{
			title: "Delete issue",
			body:  fmt.Sprintf("Delete %q? This cannot be undone.", i.Title),
			onYes: func(m *appModel) {
				if m.db.DeleteIssue(i.ID) {
					m.flash = "Issue deleted"
				}
			},
		}
	case "s":
		next := advance(model.AllIssueStatuses, i.Status)
		if m.db.SetIssueStatus(i.ID, next) {
			m.flash = fmt.Sprintf("%s → %s", i.Title, style.Label(string(next)))
		}
	case "c":
		m.prompt = newTextPrompt("Comment on "+i.Title, "Write a comment", func(m *appModel, text string) {
			if _, ok := m.db.AddIssueComment(i.ID, m.author(), text); ok {
				m.flash = "Comment added"
			}
		})
	}
	return nil
}

func (v *issuesView) render(m *appModel) string {
	w := m.bodyWidth()
	st := stats.Issues(m.db.Issues.All())
	cards := renderStatCards(w,
		statCard{"Total Issues", strconv.Itoa(st.Total)},
		statCard{"Open", strconv.Itoa(st.Open)},
		statCard{"Resolved", strconv.Itoa(st.Resolved)},
		statCard{"Critical", strconv.Itoa(st.Critical)},
	)
	main := v.list.render(m.db.Directory())
	if v.detail {
		if i, ok := v.list.selected(); ok {
			main = splitPanes(main, renderMarkdown(issueMarkdown(i, m.db.Directory()), w*2/5), w, 0)
		}
	}
	return cards + "\n\n" + main
}

func (v *issuesView) help() string {
	return "↑↓: move   ←→: page   f/t/p: filter   x: reset   n: new   e: edit   d: delete   s: next status   c: comment   enter: details"
}
