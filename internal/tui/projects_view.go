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

type projectsView struct {
	list   *listView[model.Project]
	form   *form.Modal[*form.ProjectDraft]
	detail bool
}

func newProjectsView(db *store.DB, size int, log *zap.Logger) *projectsView {
	v := &projectsView{form: form.NewModal[*form.ProjectDraft]("project", log)}
	v.list = newListView(filter.Projects(), size, db.Projects.All,
		[]filterKey{{"f", filter.KeyStatus}, {"p", filter.KeyPriority}},
		column[model.Project]{"Name", 26, func(p model.Project) string { return p.Name }},
		column[model.Project]{"Status", 15, func(p model.Project) string { return plain(style.ProjectStatus, string(p.Status)) }},
		column[model.Project]{"Priority", 12, func(p model.Project) string { return plain(style.Priority, string(p.Priority)) }},
		column[model.Project]{"Progress", 16, func(p model.Project) string {
			return glyphBar(p.Progress, 10) + " " + strconv.Itoa(p.Progress) + "%"
		}},
		column[model.Project]{"Manager", 16, func(p model.Project) string { return db.Directory().MemberName(p.ManagerID) }},
		column[model.Project]{"Budget", 12, func(p model.Project) string { return stats.Money(p.Budget) }},
		column[model.Project]{"Due", 13, func(p model.Project) string { return p.EndDate.Format(displayDate) }},
		column[model.Project]{"Team", 5, func(p model.Project) string { return strconv.Itoa(len(p.TeamMemberIDs)) }},
	)
	return v
}

func (v *projectsView) openForm(db *store.DB, p *model.Project) *formModal {
	title := "New Project"
	if p == nil {
		v.form.OpenCreate(&form.ProjectDraft{
			Status:   string(model.ProjectPlanning),
			Priority: string(model.PriorityMedium),
		})
	} else {
		v.form.OpenEdit(string(p.ID), form.ProjectDraftOf(*p))
		title = "Edit Project"
	}
	return newFormModal(title, v.form, db.Directory(), func(mode form.Mode, id string, d *form.ProjectDraft) {
		if mode == form.Creating {
			var p model.Project
			d.Apply(&p)
			db.CreateProject(p)
			return
		}
		db.EditProject(model.ProjectID(id), d.Apply)
	})
}

func (v *projectsView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
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

	p, ok := v.list.selected()
	if !ok {
		return nil
	}
	switch k {
	case "e":
		m.modal = v.openForm(m.db, &p)
	case "d":
		m.confirm = &confirmPrompt{
			title: "Delete project",
			body:  fmt.Sprintf("Delete %q? Its tasks and issues keep their project reference.", p.Name),
			onYes: func(m *appModel) {
				if m.db.DeleteProject(p.ID) {
					m.flash = "Project deleted"
				}
			},
		}
	case "s":
		next := advance(model.AllProjectStatuses, p.Status)
		if m.db.UpdateProject(p.ID, store.ProjectPatch{Status: &next}) {
			m.flash = fmt.Sprintf("%s → %s", p.Name, style.Label(string(next)))
		}
	}
	return nil
}

func (v *projectsView) render(m *appModel) string {
	w := m.bodyWidth()
	st := stats.Projects(m.db.Projects.All())
	cards := renderStatCards(w,
		statCard{"Total Projects", strconv.Itoa(st.Total)},
		statCard{"In Progress", strconv.Itoa(st.InProgress)},
		statCard{"Completed", strconv.Itoa(st.Completed)},
		statCard{"Total Budget", st.BudgetLabel},
	)
	main := v.list.render(m.db.Directory())
	if v.detail {
		if p, ok := v.list.selected(); ok {
			main = splitPanes(main, renderMarkdown(projectMarkdown(p, m.db.Directory()), w*2/5), w, 0)
		}
	}
	return cards + "\n\n" + main
}

func (v *projectsView) help() string {
	return "↑↓: move   ←→: page   f/p: filter   x: reset   n: new   e: edit   d: delete   s: next status   enter: details"
}
