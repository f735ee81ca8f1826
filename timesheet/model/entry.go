package model

// TimeEntry is a persisted row of hours for one employee, project, sub-project and day.
type TimeEntry struct {
	ID           int         `json:"id"`
	EmployeeID   int         `json:"employee_id"`
	EmployeeName string      `json:"employee_name,omitempty"`
	ProjectID    int         `json:"project_id"`
	SubProjectID int         `json:"commessa_id"`
	Date         string      `json:"data"` // yyyy-MM-dd
	Hours        float64     `json:"ore"`
	Description  string      `json:"descrizione"`
	Status       EntryStatus `json:"stato"`
	ApprovedBy   *string     `json:"approvato_da,omitempty"`
	ApprovedAt   *string     `json:"data_approvazione,omitempty"`
	InsertedAt   *string     `json:"data_inserimento,omitempty"`
}

// NewEntry is the create payload of a TimeEntry.
type NewEntry struct {
	EmployeeID   int         `json:"employee_id"`
	ProjectID    int         `json:"project_id"`
	SubProjectID int         `json:"commessa_id"`
	Date         string      `json:"data"`
	Hours        float64     `json:"ore"`
	Description  string      `json:"descrizione"`
	Status       EntryStatus `json:"stato"`
}

// EntryUpdate is the partial update payload of a TimeEntry.
type EntryUpdate struct {
	ID          int         `json:"id"`
	Hours       float64     `json:"ore"`
	Description string      `json:"descrizione"`
	Status      EntryStatus `json:"stato"`
}

type EntryFilter struct {
	EmployeeID   *int
	ProjectID    *int
	SubProjectID *int
	Year         *int
	Month        *int
}

// BatchResult is the per-item outcome of a batch save.
type BatchResult struct {
	Success bool           `json:"success"`
	Results map[string]any `json:"results,omitempty"`
	Summary map[string]any `json:"summary,omitempty"`
}
