package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/model"
)

// Data is everything an export is written from.
type Data struct {
	Entries []model.TimeEntry
	Rows    []Row
	Weeks   []core.WeekGroup
}

// Fetch loads the filtered entries together with the names they refer to.
func Fetch(ctx context.Context, gw *gateway.GatewayClient, filter model.EntryFilter, loc *time.Location) (*Data, error) {
	var (
		entries     []model.TimeEntry
		projects    []model.Project
		subProjects []model.SubProject
		employees   []model.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		entries, err = gw.Entries.List(gctx, filter)
		return wrap("timesheets", err)
	})
	g.Go(func() (err error) {
		projects, err = gw.Projects.List(gctx)
		return wrap("projects", err)
	})
	g.Go(func() (err error) {
		subProjects, err = gw.SubProjects.List(gctx, nil)
		return wrap("commesse", err)
	})
	g.Go(func() (err error) {
		employees, err = gw.Employees.List(gctx)
		return wrap("employees", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries = core.NormalizeEntries(entries, loc)
	ref := core.NewReferenceData(projects, subProjects)
	return &Data{
		Entries: entries,
		Rows:    BuildRows(entries, ref, employees),
		Weeks:   core.GroupWeeks(entries, employees, false),
	}, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}
