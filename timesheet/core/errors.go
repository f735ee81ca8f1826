package core

import (
	"errors"

	"timesheet.app/timesheet/timesheet/model"
)

var (
	ErrInvalidHours       = errors.New("invalid hours")
	ErrWeekendEdit        = errors.New("weekend days cannot be edited")
	ErrSelectionMissing   = errors.New("select project and sub-project before entering hours")
	ErrSubProjectInUse    = errors.New("sub-project already used by another row")
	ErrSubProjectMismatch = errors.New("sub-project does not belong to the selected project")
	ErrRowNotFound        = errors.New("row not found")
	ErrDateOutsideWeek    = errors.New("date outside the current week")
	ErrWeekApproved       = errors.New("week already approved")
	ErrWeekIncomplete     = errors.New("week incomplete")
	ErrNotPending         = errors.New("entry is no longer pending approval")
)

// ValidationError is a local failure detected before any gateway call.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) *ValidationError {
	return &ValidationError{Err: err}
}

// CheckPending rejects a decision on an entry that was already approved or
// rejected.
func CheckPending(entry model.TimeEntry) error {
	if entry.Status != model.StatusPending {
		return invalid(ErrNotPending)
	}
	return nil
}
