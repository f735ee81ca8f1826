package model

type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descrizione"`
	StartDate   string `json:"data_inizio"`
	EndDate     string `json:"data_fine"`
	State       string `json:"stato"`
}

// SubProject is a commessa: a budgeted work order under a Project.
type SubProject struct {
	ID          int     `json:"id"`
	ProjectID   int     `json:"project_id"`
	Name        string  `json:"nome"`
	Description string  `json:"descrizione"`
	BudgetHours float64 `json:"budget_ore"`
	State       string  `json:"stato"`
}

const (
	ProjectActive    = "attivo"
	SubProjectActive = "attiva"
)
