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

type teamView struct {
	list   *listView[model.TeamMember]
	form   *form.Modal[*form.MemberDraft]
	detail bool
}

func newTeamView(db *store.DB, size int, log *zap.Logger) *teamView {
	v := &teamView{form: form.NewModal[*form.MemberDraft]("member", log)}
	v.list = newListView(filter.Members(stats.Departments(db.Members.All())), size, db.Members.All,
		[]filterKey{{"g", filter.KeyDepartment}, {"f", filter.KeyStatus}},
		column[model.TeamMember]{"Name", 18, func(m model.TeamMember) string { return m.Name }},
		column[model.TeamMember]{"Role", 22, func(m model.TeamMember) string { return m.Role }},
		column[model.TeamMember]{"Department", 14, func(m model.TeamMember) string { return m.Department }},
		column[model.TeamMember]{"Status", 11, func(m model.TeamMember) string { return plain(style.MemberStatus, string(m.Status)) }},
		column[model.TeamMember]{"Current", 8, func(m model.TeamMember) string { return strconv.Itoa(m.CurrentTasks) }},
		column[model.TeamMember]{"Done", 6, func(m model.TeamMember) string { return strconv.Itoa(m.TasksCompleted) }},
		column[model.TeamMember]{"Email", 26, func(m model.TeamMember) string { return m.Email }},
	)
	return v
}

func (v *teamView) openForm(db *store.DB, mem *model.TeamMember) *formModal {
	title := "Add Team Member"
	if mem == nil {
		v.form.OpenCreate(&form.MemberDraft{Status: string(model.MemberActive)})
	} else {
		v.form.OpenEdit(string(mem.ID), form.MemberDraftOf(*mem))
		title = "Edit Team Member"
	}
	return newFormModal(title, v.form, db.Directory(), func(mode form.Mode, id string, d *form.MemberDraft) {
		if mode == form.Creating {
			var mem model.TeamMember
			d.Apply(&mem)
			db.CreateMember(mem)
			return
		}
		db.EditMember(model.MemberID(id), d.Apply)
	})
}

func (v *teamView) update(m *appModel, msg tea.KeyMsg) tea.Cmd {
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

	mem, ok := v.list.selected()
	if !ok {
		return nil
	}
	switch k {
	case "e":
		m.modal = v.openForm(m.db, &mem)
	case "d":
		m.confirm = &confirmPrompt{
			title: "Remove team member",
			body:  fmt.Sprintf("Remove %s from the team?", mem.Name),
			onYes: func(m *appModel) {
				if m.db.DeleteMember(mem.ID) {
					m.flash = "Team member removed"
				}
			},
		}
	case "s":
		next := advance(model.AllMemberStatuses, mem.Status)
		if m.db.UpdateMember(mem.ID, store.MemberPatch{Status: &next}) {
			m.flash = fmt.Sprintf("%s is now %s", mem.Name, style.Label(string(next)))
		}
	}
	return nil
}

func performanceOf(db *store.DB, id model.MemberID) *model.MemberPerformance {
	ps := db.Performance.List(func(p model.MemberPerformance) bool { return p.MemberID == id })
	if len(ps) == 0 {
		return nil
	}
	return &ps[0]
}

func (v *teamView) render(m *appModel) string {
	w := m.bodyWidth()
	st := stats.Team(m.db.Members.All())
	cards := renderStatCards(w,
		statCard{"Team Members", strconv.Itoa(st.Members)},
		statCard{"Active", strconv.Itoa(st.Active)},
		statCard{"Current Tasks", strconv.Itoa(st.CurrentTasks)},
		statCard{"Departments", strconv.Itoa(st.Departments)},
	)
	main := v.list.render(m.db.Directory())
	if v.detail {
		if mem, ok := v.list.selected(); ok {
			md := memberMarkdown(mem, performanceOf(m.db, mem.ID))
			main = splitPanes(main, renderMarkdown(md, w*2/5), w, 0)
		}
	}
	return cards + "\n\n" + main
}

func (v *teamView) help() string {
	return "↑↓: move   ←→: page   g/f: filter   x: reset   n: new   e: edit   d: remove   s: toggle active   enter: details"
}
