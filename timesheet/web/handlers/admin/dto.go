package admin

import (
	"timesheet.app/timesheet/timesheet/model"
	web "timesheet.app/timesheet/web/common"
)

type ProjectDTO struct {
	Name        string        `json:"nome" binding:"required"`
	Description string        `json:"descrizione"`
	StartDate   *web.DateOnly `json:"data_inizio"`
	EndDate     *web.DateOnly `json:"data_fine"`
	State       string        `json:"stato" binding:"omitempty,oneof=attivo sospeso completato"`
}

func (d ProjectDTO) toModel(id int) model.Project {
	state := d.State
	if state == "" {
		state = model.ProjectActive
	}
	return model.Project{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		StartDate:   dateString(d.StartDate),
		EndDate:     dateString(d.EndDate),
		State:       state,
	}
}

type SubProjectDTO struct {
	ProjectID   int     `json:"project_id" binding:"required"`
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descrizione"`
	BudgetHours float64 `json:"budget_ore" binding:"min=0"`
	State       string  `json:"stato" binding:"omitempty,oneof=attiva sospesa completata"`
}

func (d SubProjectDTO) toModel(id int) model.SubProject {
	state := d.State
	if state == "" {
		state = model.SubProjectActive
	}
	return model.SubProject{
		ID:          id,
		ProjectID:   d.ProjectID,
		Name:        d.Name,
		Description: d.Description,
		BudgetHours: d.BudgetHours,
		State:       state,
	}
}

type EmployeeDTO struct {
	FirstName string     `json:"nome" binding:"required"`
	LastName  string     `json:"cognome" binding:"required"`
	Username  string     `json:"username" binding:"required"`
	Password  string     `json:"password"`
	Role      model.Role `json:"ruolo" binding:"required,oneof=manager dipendente"`
}

func (d EmployeeDTO) toModel(id int) model.Employee {
	return model.Employee{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Username:  d.Username,
		Password:  d.Password,
		Role:      d.Role,
	}
}

func dateString(d *web.DateOnly) string {
	if d == nil {
		return ""
	}
	return d.String()
}
