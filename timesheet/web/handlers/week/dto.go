package week

import "timesheet.app/timesheet/timesheet/core"

type CellDTO struct {
	Row   core.RowKey `json:"row"`
	Date  string      `json:"date" binding:"required"`
	Hours *float64    `json:"hours" binding:"required"`
}

type RowSelectionDTO struct {
	ProjectID    *int `json:"projectId"`
	SubProjectID *int `json:"subProjectId"`
}

type RowDTO struct {
	Row core.RowKey `json:"row"`
}
