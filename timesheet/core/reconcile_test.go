package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timesheet.app/timesheet/timesheet/model"
)

func TestReconcilePersistedEntries(t *testing.T) {
	rows := Reconcile(ReconcileInput{
		Entries: []model.TimeEntry{
			entry(10, 1, 1, "2024-06-03", 8),
			entry(11, 1, 1, "2024-06-04", 4),
			entry(12, 2, 3, "2024-06-04", 4),
			entry(13, 2, 3, "2024-06-10", 8), // next week
		},
		Week:      testWeek,
		Reference: testReference(),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, SpecifiedKey(1, 1), rows[0].Key)
	assert.Equal(t, "Alpha", rows[0].ProjectName)
	assert.Equal(t, "A-1", rows[0].SubProjectName)
	assert.Equal(t, 12.0, rows[0].Total)
	assert.Equal(t, 10, *rows[0].Cells["2024-06-03"].EntryID)
	assert.Len(t, rows[0].Cells, 7)

	assert.Equal(t, SpecifiedKey(2, 3), rows[1].Key)
	assert.Equal(t, 4.0, rows[1].Total)
	assert.Nil(t, rows[1].Cells["2024-06-03"].EntryID)
}

func TestReconcileOrdering(t *testing.T) {
	rows := Reconcile(ReconcileInput{
		Entries:      []model.TimeEntry{entry(10, 2, 3, "2024-06-03", 8)},
		Week:         testWeek,
		Placeholders: []Placeholder{{}, {ProjectID: 1}},
		Edits:        edits(edit(1, 2, "2024-06-05", 3, nil)),
	})

	require.Len(t, rows, 4)
	assert.Equal(t, PlaceholderKey(0), rows[0].Key)
	assert.Equal(t, PlaceholderKey(1), rows[1].Key)
	assert.Equal(t, 1, rows[1].ProjectID)
	assert.Equal(t, SpecifiedKey(2, 3), rows[2].Key)
	assert.Equal(t, SpecifiedKey(1, 2), rows[3].Key)
	assert.True(t, rows[3].Cells["2024-06-05"].Pending)
}

func TestReconcilePendingEditWins(t *testing.T) {
	rows := Reconcile(ReconcileInput{
		Entries: []model.TimeEntry{entry(42, 1, 1, "2024-06-05", 8)},
		Week:    testWeek,
		Edits:   edits(edit(1, 1, "2024-06-05", 0, idPtr(42))),
	})

	require.Len(t, rows, 1)
	cell := rows[0].Cells["2024-06-05"]
	assert.Equal(t, 0.0, cell.Hours)
	assert.Equal(t, 42, *cell.EntryID)
	assert.Equal(t, "", cell.Description)
	assert.Equal(t, 0.0, rows[0].Total)
}

func TestReconcileCompletedPlaceholderSupersedesRow(t *testing.T) {
	entries := []model.TimeEntry{
		entry(10, 1, 1, "2024-06-03", 8),
		{ID: 11, ProjectID: 1, SubProjectID: 1, Date: "2024-06-04", Hours: 2, Description: "design"},
	}
	rows := Reconcile(ReconcileInput{
		Entries:      entries,
		Week:         testWeek,
		Placeholders: []Placeholder{{ProjectID: 1, SubProjectID: 1}},
		Edits:        edits(edit(1, 1, "2024-06-05", 6, nil)),
	})

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, PlaceholderKey(0), row.Key)
	assert.Equal(t, 8.0, row.Cells["2024-06-03"].Hours)
	assert.Equal(t, "design", row.Cells["2024-06-04"].Description)
	assert.Equal(t, 6.0, row.Cells["2024-06-05"].Hours)
	assert.Equal(t, 16.0, row.Total)
}

func TestReconcileIsIdempotent(t *testing.T) {
	in := ReconcileInput{
		Entries: []model.TimeEntry{
			entry(10, 1, 1, "2024-06-03", 8),
			entry(11, 2, 3, "2024-06-04", 2.5),
		},
		Week:         testWeek,
		Placeholders: []Placeholder{{}, {ProjectID: 2, SubProjectID: 3}},
		Edits: edits(
			edit(1, 2, "2024-06-06", 1.5, nil),
			edit(1, 1, "2024-06-04", 4, nil),
			edit(2, 3, "2024-06-07", 8, nil),
		),
		Reference: testReference(),
	}
	before := in.Edits.Clone()

	first := Reconcile(in)
	second := Reconcile(in)

	assert.Equal(t, first, second)
	assert.Equal(t, before, in.Edits)
}

func TestReconcileRowTotalRounding(t *testing.T) {
	tests := []struct {
		name     string
		hours    []float64
		expected float64
	}{
		{name: "Halves", hours: []float64{0.5, 0.5, 0.5, 7.5, 0, 0, 0}, expected: 9.0},
		{name: "Tenths do not drift", hours: []float64{0.1, 0.2, 0.1, 0.2, 0.1, 0.2, 0.1}, expected: 1.0},
		{name: "Quarters round to one decimal", hours: []float64{0.25, 0, 0, 0, 0, 0, 0}, expected: 0.3},
		{name: "Empty", hours: []float64{0, 0, 0, 0, 0, 0, 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []model.TimeEntry
			for i, h := range tt.hours {
				entries = append(entries, entry(i+1, 1, 1, DateKey(testWeek[i]), h))
			}
			rows := Reconcile(ReconcileInput{Entries: entries, Week: testWeek})

			require.Len(t, rows, 1)
			assert.Equal(t, tt.expected, rows[0].Total)
			assert.Equal(t, SumHours(tt.hours...), rows[0].Total)
		})
	}
}

func TestDayTotals(t *testing.T) {
	rows := Reconcile(ReconcileInput{
		Entries: []model.TimeEntry{
			entry(1, 1, 1, "2024-06-03", 4.5),
			entry(2, 2, 3, "2024-06-03", 3.5),
			entry(3, 2, 3, "2024-06-08", 1),
		},
		Week: testWeek,
	})

	assert.Equal(t, [7]float64{8, 0, 0, 0, 0, 1, 0}, DayTotals(rows, testWeek))
}

func TestIsWeekApproved(t *testing.T) {
	approved := entry(1, 1, 1, "2024-06-03", 8)
	approved.Status = model.StatusApproved
	pending := entry(2, 1, 1, "2024-06-04", 8)
	nextWeek := entry(3, 1, 1, "2024-06-10", 8)

	assert.False(t, IsWeekApproved(nil, testWeek))
	assert.True(t, IsWeekApproved([]model.TimeEntry{approved, nextWeek}, testWeek))
	assert.False(t, IsWeekApproved([]model.TimeEntry{approved, pending}, testWeek))
}
