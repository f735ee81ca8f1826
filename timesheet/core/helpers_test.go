package core

import (
	"time"

	"timesheet.app/timesheet/timesheet/model"
	"timesheet.app/timesheet/utils"
)

// week of Monday 2024-06-03
var testWeek = WeekDays(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))

func entry(id, projectID, subProjectID int, date string, hours float64) model.TimeEntry {
	return model.TimeEntry{
		ID:           id,
		EmployeeID:   7,
		ProjectID:    projectID,
		SubProjectID: subProjectID,
		Date:         date,
		Hours:        hours,
		Status:       model.StatusPending,
	}
}

func edit(projectID, subProjectID int, date string, hours float64, entryID *int) PendingEdit {
	return PendingEdit{ProjectID: projectID, SubProjectID: subProjectID, Date: date, Hours: hours, EntryID: entryID}
}

func edits(list ...PendingEdit) PendingEdits {
	out := PendingEdits{}
	for _, e := range list {
		out.Put(e)
	}
	return out
}

func testReference() *ReferenceData {
	return NewReferenceData(
		[]model.Project{
			{ID: 1, Name: "Alpha", State: model.ProjectActive},
			{ID: 2, Name: "Beta", State: model.ProjectActive},
		},
		[]model.SubProject{
			{ID: 1, ProjectID: 1, Name: "A-1"},
			{ID: 2, ProjectID: 1, Name: "A-2"},
			{ID: 3, ProjectID: 2, Name: "B-1"},
		},
	)
}

var idPtr = utils.Ptr[int]
