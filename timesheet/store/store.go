package store

import (
	"context"
	"errors"

	"timesheet.app/timesheet/timesheet/core"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore keeps the editor state of an employee week between requests.
type DraftStore interface {
	Load(ctx context.Context, employeeID int, monday string) (*core.WeekEditor, error)
	Save(ctx context.Context, editor *core.WeekEditor) error
	Delete(ctx context.Context, employeeID int, monday string) error
}

type draftKey struct {
	employeeID int
	monday     string
}
