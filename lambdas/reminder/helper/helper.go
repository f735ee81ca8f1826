package helper

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/infrastructure/communication"
	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/model"
	"timesheet.app/timesheet/utils"
)

// FindIncomplete returns a reminder for every employee whose weekdays in
// week do not all carry a full day. Managers are not reminded.
func FindIncomplete(entries []model.TimeEntry, employees []model.Employee, week core.Week) []communication.Reminder {
	byEmployee := utils.GroupBy(entries, func(e model.TimeEntry) int { return e.EmployeeID })

	var reminders []communication.Reminder
	for _, employee := range employees {
		if employee.Role == model.RoleManager {
			continue
		}
		var totals [7]float64
		for _, e := range byEmployee[employee.ID] {
			if i := week.Index(e.Date); i >= 0 {
				totals[i] = core.SumHours(totals[i], e.Hours)
			}
		}
		v := core.ValidateWeek(week, totals)
		if len(v.IncompleteDays) == 0 {
			continue
		}
		reminders = append(reminders, communication.Reminder{
			EmployeeName: employee.FullName(),
			WeekStart:    core.DateKey(week.Monday()),
			Days:         utils.Map(v.IncompleteDays, func(d core.IncompleteDay) string { return d.Date }),
		})
	}
	return reminders
}

// Remind checks the week containing day and sends the reminders. With
// dryRun the reminders are only returned.
func Remind(ctx context.Context, gw *gateway.GatewayClient, notifier *communication.Notifier, day time.Time, loc *time.Location, dryRun bool) ([]communication.Reminder, error) {
	week := core.WeekOf(day)
	month := int(week.Monday().Month())
	year := week.Monday().Year()

	var (
		entries   []model.TimeEntry
		employees []model.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		entries, err = gw.Entries.List(gctx, model.EntryFilter{Year: &year, Month: &month})
		return err
	})
	g.Go(func() (err error) {
		employees, err = gw.Employees.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// a week spanning two months needs the next month too
	if sunday := week.Sunday(); sunday.Month() != week.Monday().Month() {
		nextYear, nextMonth := sunday.Year(), int(sunday.Month())
		more, err := gw.Entries.List(ctx, model.EntryFilter{Year: &nextYear, Month: &nextMonth})
		if err != nil {
			return nil, err
		}
		entries = append(entries, more...)
	}

	reminders := FindIncomplete(core.NormalizeEntries(entries, loc), employees, week)
	fmt.Printf("[INFO] week %s: %d incomplete timesheet(s)\n", core.DateKey(week.Monday()), len(reminders))

	if dryRun || notifier == nil {
		return reminders, nil
	}
	if err := notifier.Remind(ctx, reminders); err != nil {
		return reminders, fmt.Errorf("failed to send reminders: %w", err)
	}
	return reminders, nil
}
