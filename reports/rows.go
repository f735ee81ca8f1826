package reports

import (
	"sort"

	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/model"
	"timesheet.app/timesheet/utils"
)

// Row is one exported time entry with its names resolved.
type Row struct {
	Date        string
	Employee    string
	Project     string
	SubProject  string
	Hours       float64
	Description string
	Status      model.EntryStatus
	ApprovedBy  string
}

var header = []string{"Data", "Dipendente", "Progetto", "Commessa", "Ore", "Descrizione", "Stato", "Approvato da"}

// BuildRows orders entries by date, then employee, then project.
func BuildRows(entries []model.TimeEntry, ref *core.ReferenceData, employees []model.Employee) []Row {
	names := utils.IndexBy(employees, func(e model.Employee) int { return e.ID })
	rows := utils.Map(entries, func(e model.TimeEntry) Row {
		employee := e.EmployeeName
		if emp, ok := names[e.EmployeeID]; ok && employee == "" {
			employee = emp.FullName()
		}
		return Row{
			Date:        e.Date,
			Employee:    employee,
			Project:     ref.ProjectName(e.ProjectID),
			SubProject:  ref.SubProjectName(e.SubProjectID),
			Hours:       core.FromHours(e.Hours).Hours(),
			Description: e.Description,
			Status:      e.Status,
			ApprovedBy:  utils.Deref(e.ApprovedBy, ""),
		}
	})
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Employee != b.Employee {
			return a.Employee < b.Employee
		}
		return a.Project < b.Project
	})
	return rows
}

func (r Row) strings() []string {
	return []string{
		r.Date, r.Employee, r.Project, r.SubProject,
		utils.FormatHours(r.Hours), r.Description, string(r.Status), r.ApprovedBy,
	}
}
