package core

import (
	"encoding/json"

	"timesheet.app/timesheet/utils"
)

// EditKey addresses one day of one (project, sub-project) pair.
type EditKey struct {
	ProjectID    int    `json:"projectId"`
	SubProjectID int    `json:"subProjectId"`
	Date         string `json:"date"`
}

func (k EditKey) Pair() Pair {
	return Pair{ProjectID: k.ProjectID, SubProjectID: k.SubProjectID}
}

// PendingEdit is an unsaved change to one cell. Hours of zero mean delete
// when EntryID is set and nothing otherwise.
type PendingEdit struct {
	ProjectID    int     `json:"projectId"`
	SubProjectID int     `json:"subProjectId"`
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	EntryID      *int    `json:"entryId,omitempty"`
}

func (e PendingEdit) Key() EditKey {
	return EditKey{ProjectID: e.ProjectID, SubProjectID: e.SubProjectID, Date: e.Date}
}

type PendingEdits map[EditKey]PendingEdit

func (p PendingEdits) Put(edit PendingEdit) {
	p[edit.Key()] = edit
}

// ClearPair removes every edit of the pair and returns how many were removed.
func (p PendingEdits) ClearPair(pair Pair) int {
	removed := 0
	for key := range p {
		if key.Pair() == pair {
			delete(p, key)
			removed++
		}
	}
	return removed
}

// Sorted returns the edits ordered by date, project and sub-project.
func (p PendingEdits) Sorted() []PendingEdit {
	keys := utils.SortedKeys(p, lessEditKey)
	out := make([]PendingEdit, 0, len(keys))
	for _, key := range keys {
		out = append(out, p[key])
	}
	return out
}

func (p PendingEdits) Clone() PendingEdits {
	out := make(PendingEdits, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func (p PendingEdits) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Sorted())
}

func (p *PendingEdits) UnmarshalJSON(b []byte) error {
	var list []PendingEdit
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	out := make(PendingEdits, len(list))
	for _, edit := range list {
		out.Put(edit)
	}
	*p = out
	return nil
}

func lessEditKey(a, b EditKey) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.ProjectID != b.ProjectID {
		return a.ProjectID < b.ProjectID
	}
	return a.SubProjectID < b.SubProjectID
}
