package core

import (
	"context"
	"fmt"

	"timesheet.app/timesheet/timesheet/model"
)

type BatchSaver interface {
	BatchSave(ctx context.Context, toCreate []model.NewEntry, toUpdate []model.EntryUpdate, toDelete []int) (*model.BatchResult, error)
}

type WeekSubmitter interface {
	SubmitWeek(ctx context.Context, employeeID int, weekStart, weekEnd string) error
}

// Notifier is told about submitted weeks. Failures never fail a submission.
type Notifier interface {
	WeekSubmitted(ctx context.Context, employeeID int, weekStart, weekEnd string, hours float64) error
}

// DecisionNotifier is told when a manager approves or rejects a whole week.
type DecisionNotifier interface {
	WeekDecided(ctx context.Context, employeeID int, weekStart, weekEnd string, status model.EntryStatus, by string) error
}

// IncompleteWeekError carries the validation that blocked a submission.
type IncompleteWeekError struct {
	Validation WeekValidation
}

func (e *IncompleteWeekError) Error() string {
	return fmt.Sprintf("%s: %d incomplete day(s)", ErrWeekIncomplete, len(e.Validation.IncompleteDays))
}

func (e *IncompleteWeekError) Unwrap() error {
	return ErrWeekIncomplete
}

type SubmitResult struct {
	Plan      BatchPlan          `json:"plan"`
	Batch     *model.BatchResult `json:"batch,omitempty"`
	// Submitted is false when there was nothing to save and no call was made.
	Submitted bool               `json:"submitted"`
}

type Submitter struct {
	Entries   BatchSaver
	Approvals WeekSubmitter
	Notifier  Notifier
}

// Submit validates the week, saves the pending edits in one batch and then
// submits the week for approval. Without pending edits nothing is sent. Any
// failure leaves the editor untouched so the caller can retry.
func (s *Submitter) Submit(ctx context.Context, editor *WeekEditor, snap Snapshot) (*SubmitResult, error) {
	week := editor.Week()
	if IsWeekApproved(snap.Entries, week) {
		return nil, invalid(ErrWeekApproved)
	}

	validation := ValidateRows(editor.Rows(snap), week)
	if !validation.IsValid {
		return nil, &IncompleteWeekError{Validation: validation}
	}

	result := &SubmitResult{Plan: Plan(editor.Edits, editor.EmployeeID)}
	weekStart, weekEnd := DateKey(week.Monday()), DateKey(week.Sunday())
	if result.Plan.Empty() {
		fmt.Printf("[INFO] employee %d has no changes to submit for week %s\n", editor.EmployeeID, weekStart)
		return result, nil
	}

	batch, err := s.Entries.BatchSave(ctx, result.Plan.ToCreate, result.Plan.ToUpdate, result.Plan.ToDelete)
	if err != nil {
		return nil, fmt.Errorf("batch save failed: %w", err)
	}
	result.Batch = batch

	if err := s.Approvals.SubmitWeek(ctx, editor.EmployeeID, weekStart, weekEnd); err != nil {
		return nil, fmt.Errorf("submit week failed: %w", err)
	}

	result.Submitted = true
	editor.Discard()
	fmt.Printf("[INFO] employee %d submitted week %s (%d changes)\n", editor.EmployeeID, weekStart, result.Plan.Size())

	if s.Notifier != nil {
		if err := s.Notifier.WeekSubmitted(ctx, editor.EmployeeID, weekStart, weekEnd, validation.WeekTotal); err != nil {
			fmt.Printf("[WARN] failed to notify week submission: %v\n", err)
		}
	}
	return result, nil
}
