package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timesheet.app/timesheet/timesheet/model"
)

type fakeProjects struct {
	projects []model.Project
	err      error
}

func (f fakeProjects) List(context.Context) ([]model.Project, error) {
	return f.projects, f.err
}

type fakeSubProjects struct {
	byProject map[int][]model.SubProject
	failing   map[int]bool
	requested []int
}

func (f *fakeSubProjects) List(_ context.Context, projectID *int) ([]model.SubProject, error) {
	f.requested = append(f.requested, *projectID)
	if f.failing[*projectID] {
		return nil, errors.New("no sub-projects")
	}
	return f.byProject[*projectID], nil
}

type fakeEntries struct {
	entries []model.TimeEntry
	err     error
}

func (f fakeEntries) ListForEmployee(context.Context, int) ([]model.TimeEntry, error) {
	return f.entries, f.err
}

func TestLoad(t *testing.T) {
	subs := &fakeSubProjects{
		byProject: map[int][]model.SubProject{
			1: {{ID: 1, ProjectID: 1, Name: "A-1"}},
			3: {{ID: 5, ProjectID: 3, Name: "C-1"}},
		},
		failing: map[int]bool{2: true},
	}
	loader := &Loader{
		Projects:    fakeProjects{projects: []model.Project{{ID: 1, Name: "Alpha"}, {ID: 2}, {ID: 3}}},
		SubProjects: subs,
		Entries: fakeEntries{entries: []model.TimeEntry{
			{ID: 1, Date: "2024-06-03T22:00:00.000Z"},
			{ID: 2, Date: "2024-06-05"},
			{ID: 3, Date: "garbage"},
		}},
		Location: time.FixedZone("UTC+2", 2*60*60),
	}

	snap, err := loader.Load(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, subs.requested)
	assert.Len(t, snap.Reference.SubProjects, 2)
	assert.Equal(t, "Alpha", snap.Reference.ProjectName(1))
	assert.Equal(t, "C-1", snap.Reference.SubProjectName(5))
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "2024-06-04", snap.Entries[0].Date)
	assert.Equal(t, "2024-06-05", snap.Entries[1].Date)
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		projects fakeProjects
		entries  fakeEntries
	}{
		{name: "Projects", projects: fakeProjects{err: errors.New("boom")}},
		{name: "Entries", entries: fakeEntries{err: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &Loader{Projects: tt.projects, SubProjects: &fakeSubProjects{}, Entries: tt.entries}
			_, err := loader.Load(context.Background(), 7)
			assert.Error(t, err)
		})
	}
}
