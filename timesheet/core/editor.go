package core

import (
	"time"

	"timesheet.app/timesheet/timesheet/model"
)

// DefaultPlaceholderRows is the number of empty rows a fresh week starts with.
const DefaultPlaceholderRows = 4

// WeekEditor is the serializable state of one employee editing one week:
// placeholder rows, pending edits and the load generation.
type WeekEditor struct {
	EmployeeID   int           `json:"employeeId"`
	Monday       string        `json:"monday"`
	Placeholders []Placeholder `json:"placeholders"`
	Edits        PendingEdits  `json:"edits"`
	Generation   uint64        `json:"generation"`
}

// Snapshot is the persisted data an editor is applied to.
type Snapshot struct {
	Entries   []model.TimeEntry
	Reference *ReferenceData
}

func NewWeekEditor(employeeID int, day time.Time) *WeekEditor {
	return &WeekEditor{
		EmployeeID:   employeeID,
		Monday:       DateKey(MondayOf(day)),
		Placeholders: make([]Placeholder, DefaultPlaceholderRows),
		Edits:        PendingEdits{},
	}
}

// Normalize restores empty collections after decoding.
func (e *WeekEditor) Normalize() {
	if e.Edits == nil {
		e.Edits = PendingEdits{}
	}
	if e.Placeholders == nil {
		e.Placeholders = []Placeholder{}
	}
}

// Week returns the dates of the edited week. Only calendar days matter to the
// editor, so the week is anchored in UTC.
func (e *WeekEditor) Week() Week {
	monday, err := time.Parse(DateLayout, e.Monday)
	if err != nil {
		monday = MondayOf(time.Now().UTC())
	}
	return WeekDays(monday)
}

// Navigate moves to the week containing day and drops all unsaved state.
func (e *WeekEditor) Navigate(day time.Time) {
	e.Monday = DateKey(MondayOf(day))
	e.Placeholders = []Placeholder{}
	e.Edits = PendingEdits{}
	e.Generation++
}

// BeginLoad starts a load and returns its generation token.
func (e *WeekEditor) BeginLoad() uint64 {
	e.Generation++
	return e.Generation
}

// Accept reports whether a load started with token is still current.
func (e *WeekEditor) Accept(token uint64) bool {
	return token == e.Generation
}

func (e *WeekEditor) Rows(s Snapshot) []DisplayRow {
	return Reconcile(ReconcileInput{
		Entries:      s.Entries,
		Week:         e.Week(),
		Placeholders: e.Placeholders,
		Edits:        e.Edits,
		Reference:    s.Reference,
	})
}

func (e *WeekEditor) AddRow() int {
	e.Placeholders = append(e.Placeholders, Placeholder{})
	return len(e.Placeholders) - 1
}

// DeleteRow clears the row's pending edits, then removes the placeholder
// descriptor when the row is a placeholder. Placeholders after it shift down.
func (e *WeekEditor) DeleteRow(key RowKey) error {
	if !key.IsPlaceholder() {
		e.Edits.ClearPair(Pair{ProjectID: key.ProjectID, SubProjectID: key.SubProjectID})
		return nil
	}
	if key.Index < 0 || key.Index >= len(e.Placeholders) {
		return invalid(ErrRowNotFound)
	}
	if ph := e.Placeholders[key.Index]; ph.Complete() {
		e.Edits.ClearPair(ph)
	}
	e.Placeholders = append(e.Placeholders[:key.Index], e.Placeholders[key.Index+1:]...)
	return nil
}

func (e *WeekEditor) placeholder(index int) (*Placeholder, error) {
	if index < 0 || index >= len(e.Placeholders) {
		return nil, invalid(ErrRowNotFound)
	}
	return &e.Placeholders[index], nil
}

// SelectProject sets the project of a placeholder row and resets its
// sub-project. Edits recorded under the previous pair are discarded.
func (e *WeekEditor) SelectProject(index, projectID int) error {
	ph, err := e.placeholder(index)
	if err != nil {
		return err
	}
	if ph.Complete() {
		e.Edits.ClearPair(*ph)
	}
	*ph = Placeholder{ProjectID: projectID}
	return nil
}

// SelectSubProject sets the sub-project of a placeholder row. A sub-project
// chosen by another row cannot be chosen again.
func (e *WeekEditor) SelectSubProject(index, subProjectID int, ref *ReferenceData) error {
	ph, err := e.placeholder(index)
	if err != nil {
		return err
	}
	if subProjectID != 0 {
		if ph.ProjectID == 0 {
			return invalid(ErrSelectionMissing)
		}
		if usedSubProjects(e.Placeholders, index)[subProjectID] {
			return invalid(ErrSubProjectInUse)
		}
		if sub, ok := ref.SubProject(subProjectID); ok && sub.ProjectID != ph.ProjectID {
			return invalid(ErrSubProjectMismatch)
		}
	}
	if ph.Complete() && ph.SubProjectID != subProjectID {
		e.Edits.ClearPair(*ph)
	}
	ph.SubProjectID = subProjectID
	return nil
}

// SetCell records an edit of one cell. Hours require both a project and a
// sub-project. A specified key must match a displayed row or a sub-project
// of its project in the reference data. Zero hours on a saved cell record a
// delete, on an unsaved cell they drop the edit.
func (e *WeekEditor) SetCell(s Snapshot, cell CellKey, hours float64) error {
	week := e.Week()
	if !week.Contains(cell.Date) {
		return invalid(ErrDateOutsideWeek)
	}
	if IsWeekendKey(cell.Date) {
		return invalid(ErrWeekendEdit)
	}
	if err := CheckHours(hours); err != nil {
		return invalid(err)
	}
	if IsWeekApproved(s.Entries, week) {
		return invalid(ErrWeekApproved)
	}

	rows := e.Rows(s)
	var pair Pair
	switch cell.Row.Kind {
	case RowPlaceholder:
		ph, err := e.placeholder(cell.Row.Index)
		if err != nil {
			return err
		}
		pair = *ph
	case RowSpecified:
		pair = Pair{ProjectID: cell.Row.ProjectID, SubProjectID: cell.Row.SubProjectID}
		if _, ok := FindRow(rows, cell.Row); !ok && pair.Complete() {
			// a new specified row must name a known sub-project of its project
			sub, known := s.Reference.SubProject(pair.SubProjectID)
			if !known {
				return invalid(ErrRowNotFound)
			}
			if sub.ProjectID != pair.ProjectID {
				return invalid(ErrSubProjectMismatch)
			}
		}
	default:
		return invalid(ErrRowNotFound)
	}
	if !pair.Complete() {
		return invalid(ErrSelectionMissing)
	}

	var entryID *int
	for _, row := range rows {
		if row.Pair() == pair {
			entryID = row.Cells[cell.Date].EntryID
			break
		}
	}

	key := EditKey{ProjectID: pair.ProjectID, SubProjectID: pair.SubProjectID, Date: cell.Date}
	if FromHours(hours) == 0 && entryID == nil {
		delete(e.Edits, key)
		return nil
	}
	e.Edits.Put(PendingEdit{
		ProjectID:    pair.ProjectID,
		SubProjectID: pair.SubProjectID,
		Date:         cell.Date,
		Hours:        FromHours(hours).Hours(),
		EntryID:      entryID,
	})
	return nil
}

// Discard drops unsaved state after a successful submission.
func (e *WeekEditor) Discard() {
	e.Edits = PendingEdits{}
	e.Placeholders = []Placeholder{}
}

type RowOptions struct {
	Index       int                `json:"index"`
	Projects    []model.Project    `json:"projects"`
	SubProjects []model.SubProject `json:"subProjects"`
}

// WeekView is everything a client needs to render the weekly grid.
type WeekView struct {
	EmployeeID   int            `json:"employeeId"`
	Days         [7]string      `json:"days"`
	PreviousWeek string         `json:"previousWeek"`
	NextWeek     string         `json:"nextWeek"`
	Rows         []DisplayRow   `json:"rows"`
	Validation   WeekValidation `json:"validation"`
	Approved     bool           `json:"approved"`
	PendingEdits int            `json:"pendingEdits"`
	Options      []RowOptions   `json:"options"`
	Generation   uint64         `json:"generation"`
}

func (e *WeekEditor) View(s Snapshot) WeekView {
	week := e.Week()
	rows := e.Rows(s)
	options := make([]RowOptions, len(e.Placeholders))
	for i := range e.Placeholders {
		options[i] = RowOptions{
			Index:       i,
			Projects:    s.Reference.AvailableProjects(e.Placeholders, i),
			SubProjects: s.Reference.AvailableSubProjects(e.Placeholders, i),
		}
	}
	return WeekView{
		EmployeeID:   e.EmployeeID,
		Days:         week.Keys(),
		PreviousWeek: DateKey(week.Previous().Monday()),
		NextWeek:     DateKey(week.Next().Monday()),
		Rows:         rows,
		Validation:   ValidateRows(rows, week),
		Approved:     IsWeekApproved(s.Entries, week),
		PendingEdits: len(e.Edits),
		Options:      options,
		Generation:   e.Generation,
	}
}
