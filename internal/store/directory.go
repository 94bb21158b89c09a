package store

import (
	"strings"

	"taskflow/internal/model"
)

const (
	UnknownProject = "(unknown project)"
	UnknownMember  = "(unknown member)"
)

// Directory resolves typed project/member ids to display names and back.
// Renaming a project or member changes only the Directory's output; records keep
// pointing at the same id.
type Directory struct {
	projects []model.Project
	members  []model.TeamMember
}

func NewDirectory(projects []model.Project, members []model.TeamMember) Directory {
	return Directory{projects: projects, members: members}
}

func (d Directory) ProjectName(id model.ProjectID) string {
	if id == "" {
		return ""
	}
	for _, p := range d.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return UnknownProject
}

func (d Directory) MemberName(id model.MemberID) string {
	if id == "" {
		return ""
	}
	for _, m := range d.members {
		if m.ID == id {
			return m.Name
		}
	}
	return UnknownMember
}

func (d Directory) MemberNames(ids []model.MemberID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.MemberName(id))
	}
	return out
}

// ResolveProject accepts either a project id or its (case-insensitive) name.
func (d Directory) ResolveProject(ref string) (model.ProjectID, bool) {
	ref = strings.TrimSpace(ref)
	for _, p := range d.projects {
		if string(p.ID) == ref {
			return p.ID, true
		}
	}
	for _, p := range d.projects {
		if strings.EqualFold(p.Name, ref) {
			return p.ID, true
		}
	}
	return "", false
}

// ResolveMember accepts either a member id or their (case-insensitive) name.
func (d Directory) ResolveMember(ref string) (model.MemberID, bool) {
	ref = strings.TrimSpace(ref)
	for _, m := range d.members {
		if string(m.ID) == ref {
			return m.ID, true
		}
	}
	for _, m := range d.members {
		if strings.EqualFold(m.Name, ref) {
			return m.ID, true
		}
	}
	return "", false
}

func (d Directory) Projects() []model.Project { return d.projects }

func (d Directory) Members() []model.TeamMember { return d.members }
