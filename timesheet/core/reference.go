package core

import (
	"timesheet.app/timesheet/timesheet/model"
	"timesheet.app/timesheet/utils"
)

// ReferenceData holds the projects and sub-projects an employee can book on.
type ReferenceData struct {
	Projects    []model.Project    `json:"projects"`
	SubProjects []model.SubProject `json:"subProjects"`

	projectByID    map[int]model.Project
	subProjectByID map[int]model.SubProject
}

func NewReferenceData(projects []model.Project, subProjects []model.SubProject) *ReferenceData {
	return &ReferenceData{
		Projects:       projects,
		SubProjects:    subProjects,
		projectByID:    utils.IndexBy(projects, func(p model.Project) int { return p.ID }),
		subProjectByID: utils.IndexBy(subProjects, func(s model.SubProject) int { return s.ID }),
	}
}

func (r *ReferenceData) ProjectName(id int) string {
	if r == nil {
		return ""
	}
	return r.projectByID[id].Name
}

func (r *ReferenceData) SubProjectName(id int) string {
	if r == nil {
		return ""
	}
	return r.subProjectByID[id].Name
}

func (r *ReferenceData) SubProject(id int) (model.SubProject, bool) {
	if r == nil {
		return model.SubProject{}, false
	}
	s, ok := r.subProjectByID[id]
	return s, ok
}

func (r *ReferenceData) SubProjectsOf(projectID int) []model.SubProject {
	if r == nil {
		return nil
	}
	return utils.Filter(r.SubProjects, func(s model.SubProject) bool { return s.ProjectID == projectID })
}

// usedSubProjects collects the sub-projects selected by placeholders other than exclude.
func usedSubProjects(placeholders []Placeholder, exclude int) map[int]bool {
	used := make(map[int]bool)
	for i, ph := range placeholders {
		if i != exclude && ph.Complete() {
			used[ph.SubProjectID] = true
		}
	}
	return used
}

// AvailableProjects lists the projects the placeholder at index may choose.
// A project stays hidden when every one of its sub-projects is already used by
// another row, unless the placeholder already selected it.
func (r *ReferenceData) AvailableProjects(placeholders []Placeholder, index int) []model.Project {
	if r == nil {
		return nil
	}
	used := usedSubProjects(placeholders, index)
	current := 0
	if index >= 0 && index < len(placeholders) {
		current = placeholders[index].ProjectID
	}
	return utils.Filter(r.Projects, func(p model.Project) bool {
		if p.ID == current {
			return true
		}
		subs := r.SubProjectsOf(p.ID)
		if len(subs) == 0 {
			return true
		}
		return !utils.All(subs, func(s model.SubProject) bool { return used[s.ID] })
	})
}

// AvailableSubProjects lists the sub-projects of the placeholder's project that
// no other row uses.
func (r *ReferenceData) AvailableSubProjects(placeholders []Placeholder, index int) []model.SubProject {
	if r == nil || index < 0 || index >= len(placeholders) {
		return nil
	}
	ph := placeholders[index]
	if ph.ProjectID == 0 {
		return nil
	}
	used := usedSubProjects(placeholders, index)
	return utils.Filter(r.SubProjectsOf(ph.ProjectID), func(s model.SubProject) bool {
		return s.ID == ph.SubProjectID || !used[s.ID]
	})
}
