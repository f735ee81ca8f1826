package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timesheet.app/timesheet/timesheet/model"
)

type fakeGateway struct {
	calls        []string
	batchErr     error
	submitErr    error
	lastCreate   []model.NewEntry
	lastDelete   []int
	submittedFor [3]any
}

func (f *fakeGateway) BatchSave(_ context.Context, toCreate []model.NewEntry, _ []model.EntryUpdate, toDelete []int) (*model.BatchResult, error) {
	f.calls = append(f.calls, "batch")
	f.lastCreate = toCreate
	f.lastDelete = toDelete
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return &model.BatchResult{Success: true}, nil
}

func (f *fakeGateway) SubmitWeek(_ context.Context, employeeID int, weekStart, weekEnd string) error {
	f.calls = append(f.calls, "submit")
	f.submittedFor = [3]any{employeeID, weekStart, weekEnd}
	return f.submitErr
}

type fakeNotifier struct {
	notified int
	err      error
}

func (f *fakeNotifier) WeekSubmitted(context.Context, int, string, string, float64) error {
	f.notified++
	return f.err
}

// completeWeek has Monday..Thursday saved and Friday pending.
func completeWeek() (*WeekEditor, Snapshot) {
	e := newTestEditor()
	var entries []model.TimeEntry
	for i, key := range testWeek.Keys() {
		if i < 4 {
			entries = append(entries, entry(100+i, 1, 1, key, 8))
		}
	}
	e.Edits = edits(edit(1, 1, "2024-06-07", 8, nil))
	return e, Snapshot{Entries: entries}
}

func TestSubmit(t *testing.T) {
	gw := &fakeGateway{}
	notifier := &fakeNotifier{err: errors.New("slack down")}
	s := &Submitter{Entries: gw, Approvals: gw, Notifier: notifier}
	e, snap := completeWeek()

	result, err := s.Submit(context.Background(), e, snap)

	require.NoError(t, err)
	assert.Equal(t, []string{"batch", "submit"}, gw.calls)
	assert.Equal(t, [3]any{7, "2024-06-03", "2024-06-09"}, gw.submittedFor)
	require.Len(t, gw.lastCreate, 1)
	assert.Equal(t, "2024-06-07", gw.lastCreate[0].Date)
	assert.True(t, result.Batch.Success)
	assert.True(t, result.Submitted)
	assert.Empty(t, e.Edits)
	assert.Empty(t, e.Placeholders)
	assert.Equal(t, 1, notifier.notified)
}

func TestSubmitWithoutEditsMakesNoCall(t *testing.T) {
	gw := &fakeGateway{}
	notifier := &fakeNotifier{}
	s := &Submitter{Entries: gw, Approvals: gw, Notifier: notifier}
	e, snap := completeWeek()
	e.Edits = PendingEdits{}
	snap.Entries = append(snap.Entries, entry(200, 1, 1, "2024-06-07", 8))

	result, err := s.Submit(context.Background(), e, snap)

	require.NoError(t, err)
	assert.Empty(t, gw.calls)
	assert.True(t, result.Plan.Empty())
	assert.False(t, result.Submitted)
	assert.Nil(t, result.Batch)
	assert.Zero(t, notifier.notified)
	assert.Len(t, e.Placeholders, DefaultPlaceholderRows)
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name  string
		gw    *fakeGateway
		calls []string
	}{
		{
			name:  "Batch failure aborts before submit",
			gw:    &fakeGateway{batchErr: errors.New("network down")},
			calls: []string{"batch"},
		},
		{
			name:  "Submit failure keeps edits",
			gw:    &fakeGateway{submitErr: errors.New("script error")},
			calls: []string{"batch", "submit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Submitter{Entries: tt.gw, Approvals: tt.gw}
			e, snap := completeWeek()
			before := e.Edits.Clone()

			_, err := s.Submit(context.Background(), e, snap)

			assert.Error(t, err)
			assert.Equal(t, tt.calls, tt.gw.calls)
			assert.Equal(t, before, e.Edits)
			assert.Len(t, e.Placeholders, DefaultPlaceholderRows)
		})
	}
}

func TestSubmitIncompleteWeekMakesNoCall(t *testing.T) {
	gw := &fakeGateway{}
	s := &Submitter{Entries: gw, Approvals: gw}
	e, snap := completeWeek()
	e.Edits = edits(edit(1, 1, "2024-06-07", 6, nil))

	_, err := s.Submit(context.Background(), e, snap)

	var incomplete *IncompleteWeekError
	require.ErrorAs(t, err, &incomplete)
	assert.ErrorIs(t, err, ErrWeekIncomplete)
	assert.Equal(t, []IncompleteDay{{Date: "2024-06-07", Total: 6, Missing: 2}}, incomplete.Validation.IncompleteDays)
	assert.Empty(t, gw.calls)
	assert.Len(t, e.Edits, 1)
}
