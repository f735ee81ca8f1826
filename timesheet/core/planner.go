package core

import (
	"timesheet.app/timesheet/timesheet/model"
)

// BatchPlan is the create/update/delete partition of a set of pending edits.
type BatchPlan struct {
	ToCreate []model.NewEntry    `json:"toCreate"`
	ToUpdate []model.EntryUpdate `json:"toUpdate"`
	ToDelete []int               `json:"toDelete"`
}

func (p BatchPlan) Empty() bool {
	return len(p.ToCreate) == 0 && len(p.ToUpdate) == 0 && len(p.ToDelete) == 0
}

func (p BatchPlan) Size() int {
	return len(p.ToCreate) + len(p.ToUpdate) + len(p.ToDelete)
}

// Plan partitions the edits of one employee. Weekend edits are dropped before
// partitioning and so are zero-hour edits without an entry to delete. Every
// created or updated entry goes back to pending.
func Plan(edits PendingEdits, employeeID int) BatchPlan {
	plan := BatchPlan{
		ToCreate: []model.NewEntry{},
		ToUpdate: []model.EntryUpdate{},
		ToDelete: []int{},
	}

	for _, edit := range edits.Sorted() {
		if IsWeekendKey(edit.Date) {
			continue
		}
		hours := FromHours(edit.Hours)
		switch {
		case hours > 0 && edit.EntryID == nil:
			plan.ToCreate = append(plan.ToCreate, model.NewEntry{
				EmployeeID:   employeeID,
				ProjectID:    edit.ProjectID,
				SubProjectID: edit.SubProjectID,
				Date:         edit.Date,
				Hours:        hours.Hours(),
				Description:  "",
				Status:       model.StatusPending,
			})
		case hours > 0:
			plan.ToUpdate = append(plan.ToUpdate, model.EntryUpdate{
				ID:          *edit.EntryID,
				Hours:       hours.Hours(),
				Description: "",
				Status:      model.StatusPending,
			})
		case edit.EntryID != nil:
			plan.ToDelete = append(plan.ToDelete, *edit.EntryID)
		}
	}

	return plan
}
