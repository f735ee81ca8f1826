package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"timesheet.app/timesheet/timesheet/model"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		edits    PendingEdits
		expected BatchPlan
	}{
		{
			name:  "New hours next to a persisted day",
			edits: edits(edit(1, 1, "2024-06-04", 4, nil)),
			expected: BatchPlan{
				ToCreate: []model.NewEntry{{EmployeeID: 7, ProjectID: 1, SubProjectID: 1, Date: "2024-06-04", Hours: 4, Status: model.StatusPending}},
				ToUpdate: []model.EntryUpdate{},
				ToDelete: []int{},
			},
		},
		{
			name:  "Zero hours on a saved cell",
			edits: edits(edit(1, 1, "2024-06-05", 0, idPtr(42))),
			expected: BatchPlan{
				ToCreate: []model.NewEntry{},
				ToUpdate: []model.EntryUpdate{},
				ToDelete: []int{42},
			},
		},
		{
			name:  "Changed hours on a saved cell",
			edits: edits(edit(2, 3, "2024-06-06", 6.5, idPtr(9))),
			expected: BatchPlan{
				ToCreate: []model.NewEntry{},
				ToUpdate: []model.EntryUpdate{{ID: 9, Hours: 6.5, Status: model.StatusPending}},
				ToDelete: []int{},
			},
		},
		{
			name: "Zero hours without entry and weekend edits are dropped",
			edits: edits(
				edit(1, 1, "2024-06-03", 0, nil),
				edit(1, 1, "2024-06-08", 4, nil),
				edit(1, 1, "2024-06-09", 0, idPtr(5)),
			),
			expected: BatchPlan{
				ToCreate: []model.NewEntry{},
				ToUpdate: []model.EntryUpdate{},
				ToDelete: []int{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan(tt.edits, 7)
			assert.Equal(t, tt.expected, plan)
		})
	}
}

func TestPlanIsEmpty(t *testing.T) {
	assert.True(t, Plan(PendingEdits{}, 7).Empty())
	assert.True(t, Plan(edits(edit(1, 1, "2024-06-08", 8, nil)), 7).Empty())
	assert.False(t, Plan(edits(edit(1, 1, "2024-06-07", 8, nil)), 7).Empty())
}

func TestPlanDeleteExcludesCreateAndUpdate(t *testing.T) {
	plan := Plan(edits(
		edit(1, 1, "2024-06-05", 0, idPtr(42)),
		edit(1, 1, "2024-06-06", 8, nil),
		edit(2, 3, "2024-06-05", 8, idPtr(43)),
	), 7)

	assert.Equal(t, []int{42}, plan.ToDelete)
	for _, c := range plan.ToCreate {
		assert.False(t, c.ProjectID == 1 && c.SubProjectID == 1 && c.Date == "2024-06-05")
	}
	for _, u := range plan.ToUpdate {
		assert.NotEqual(t, 42, u.ID)
	}
	assert.Equal(t, 3, plan.Size())
}

func TestPlanIsOrdered(t *testing.T) {
	plan := Plan(edits(
		edit(2, 3, "2024-06-04", 1, nil),
		edit(1, 2, "2024-06-04", 1, nil),
		edit(1, 1, "2024-06-03", 1, nil),
	), 7)

	var order []string
	for _, c := range plan.ToCreate {
		order = append(order, c.Date)
	}
	assert.Equal(t, []string{"2024-06-03", "2024-06-04", "2024-06-04"}, order)
	assert.Equal(t, 1, plan.ToCreate[1].ProjectID)
	assert.Equal(t, 2, plan.ToCreate[2].ProjectID)
}
