package core

import (
	"timesheet.app/timesheet/timesheet/model"
)

type Cell struct {
	EntryID     *int              `json:"entryId,omitempty"`
	Hours       float64           `json:"hours"`
	Description string            `json:"description"`
	Status      model.EntryStatus `json:"status,omitempty"`
	Pending     bool              `json:"pending,omitempty"`
}

// DisplayRow is one (project, sub-project) line of the weekly grid.
type DisplayRow struct {
	Key            RowKey          `json:"key"`
	ProjectID      int             `json:"projectId"`
	SubProjectID   int             `json:"subProjectId"`
	ProjectName    string          `json:"projectName"`
	SubProjectName string          `json:"subProjectName"`
	Cells          map[string]Cell `json:"cells"`
	Total          float64         `json:"total"`
}

func (r DisplayRow) Pair() Pair {
	return Pair{ProjectID: r.ProjectID, SubProjectID: r.SubProjectID}
}

type ReconcileInput struct {
	Entries      []model.TimeEntry
	Week         Week
	Placeholders []Placeholder
	Edits        PendingEdits
	Reference    *ReferenceData
}

// Reconcile merges persisted entries, placeholder rows and pending edits into
// the rows of one week. It does not mutate its input.
//
// Rows come out as placeholders in order, then rows found in persisted
// entries, then rows that exist only because of pending edits.
func Reconcile(in ReconcileInput) []DisplayRow {
	keys := in.Week.Keys()
	rows := make([]*DisplayRow, 0, len(in.Placeholders))
	index := make(map[RowKey]*DisplayRow)

	newRow := func(key RowKey, pair Pair) *DisplayRow {
		row := &DisplayRow{
			Key:            key,
			ProjectID:      pair.ProjectID,
			SubProjectID:   pair.SubProjectID,
			ProjectName:    in.Reference.ProjectName(pair.ProjectID),
			SubProjectName: in.Reference.SubProjectName(pair.SubProjectID),
			Cells:          make(map[string]Cell, len(keys)),
		}
		for _, k := range keys {
			row.Cells[k] = Cell{}
		}
		rows = append(rows, row)
		index[key] = row
		return row
	}

	// a completed placeholder owns its pair
	owner := make(map[Pair]RowKey)
	for i, ph := range in.Placeholders {
		key := PlaceholderKey(i)
		newRow(key, ph)
		if ph.Complete() {
			if _, taken := owner[ph]; !taken {
				owner[ph] = key
			}
		}
	}

	rowFor := func(pair Pair) *DisplayRow {
		key, ok := owner[pair]
		if !ok {
			key = SpecifiedKey(pair.ProjectID, pair.SubProjectID)
		}
		if row, ok := index[key]; ok {
			return row
		}
		return newRow(key, pair)
	}

	for _, entry := range in.Entries {
		if !in.Week.Contains(entry.Date) {
			continue
		}
		editKey := EditKey{ProjectID: entry.ProjectID, SubProjectID: entry.SubProjectID, Date: entry.Date}
		if _, edited := in.Edits[editKey]; edited {
			continue
		}
		id := entry.ID
		row := rowFor(editKey.Pair())
		row.Cells[entry.Date] = Cell{
			EntryID:     &id,
			Hours:       entry.Hours,
			Description: entry.Description,
			Status:      entry.Status,
		}
	}

	for _, edit := range in.Edits.Sorted() {
		if !in.Week.Contains(edit.Date) {
			continue
		}
		row := rowFor(edit.Key().Pair())
		var id *int
		if edit.EntryID != nil {
			v := *edit.EntryID
			id = &v
		}
		row.Cells[edit.Date] = Cell{EntryID: id, Hours: edit.Hours, Pending: true}
	}

	out := make([]DisplayRow, len(rows))
	for i, row := range rows {
		row.Total = rowTotal(row, keys)
		out[i] = *row
	}
	return out
}

func rowTotal(row *DisplayRow, keys [7]string) float64 {
	var sum Centihours
	for _, k := range keys {
		sum += FromHours(row.Cells[k].Hours)
	}
	return sum.Hours()
}

// DayTotals sums every row per day of the week.
func DayTotals(rows []DisplayRow, week Week) [7]float64 {
	var sums [7]Centihours
	keys := week.Keys()
	for _, row := range rows {
		for i, k := range keys {
			sums[i] += FromHours(row.Cells[k].Hours)
		}
	}
	var totals [7]float64
	for i, s := range sums {
		totals[i] = s.Hours()
	}
	return totals
}

// FindRow returns the row with the given key.
func FindRow(rows []DisplayRow, key RowKey) (DisplayRow, bool) {
	for _, row := range rows {
		if row.Key == key {
			return row, true
		}
	}
	return DisplayRow{}, false
}

// IsWeekApproved reports whether the week has entries and all of them are approved.
func IsWeekApproved(entries []model.TimeEntry, week Week) bool {
	found := false
	for _, e := range entries {
		if !week.Contains(e.Date) {
			continue
		}
		if e.Status != model.StatusApproved {
			return false
		}
		found = true
	}
	return found
}
