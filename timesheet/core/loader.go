package core

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"timesheet.app/timesheet/timesheet/model"
)

type ProjectSource interface {
	List(ctx context.Context) ([]model.Project, error)
}

type SubProjectSource interface {
	List(ctx context.Context, projectID *int) ([]model.SubProject, error)
}

type EntrySource interface {
	ListForEmployee(ctx context.Context, employeeID int) ([]model.TimeEntry, error)
}

// Loader fetches everything the weekly grid of one employee needs.
type Loader struct {
	Projects    ProjectSource
	SubProjects SubProjectSource
	Entries     EntrySource
	Location    *time.Location
}

// Load requests the projects and the employee's entries concurrently, then
// the sub-projects of each project one at a time. A project whose
// sub-projects cannot be listed is skipped.
func (l *Loader) Load(ctx context.Context, employeeID int) (Snapshot, error) {
	var (
		projects []model.Project
		entries  []model.TimeEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = l.Projects.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = l.Entries.ListForEmployee(gctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to load timesheets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	var subProjects []model.SubProject
	for _, p := range projects {
		id := p.ID
		subs, err := l.SubProjects.List(ctx, &id)
		if err != nil {
			fmt.Printf("[WARN] skipping sub-projects of project %d: %v\n", p.ID, err)
			continue
		}
		subProjects = append(subProjects, subs...)
	}

	return Snapshot{
		Entries:   NormalizeEntries(entries, l.location()),
		Reference: NewReferenceData(projects, subProjects),
	}, nil
}

func (l *Loader) location() *time.Location {
	if l.Location == nil {
		return time.Local
	}
	return l.Location
}

// NormalizeEntries rewrites entry dates as date keys in loc and drops
// entries whose date cannot be read.
func NormalizeEntries(entries []model.TimeEntry, loc *time.Location) []model.TimeEntry {
	out := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		key, err := NormalizeDateKey(e.Date, loc)
		if err != nil {
			fmt.Printf("[WARN] dropping timesheet %d with unreadable date %q\n", e.ID, e.Date)
			continue
		}
		e.Date = key
		out = append(out, e)
	}
	return out
}
