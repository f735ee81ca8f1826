package communication

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"timesheet.app/timesheet/timesheet/model"
)

// WeekSubmission is what managers are told when an employee submits a week.
type WeekSubmission struct {
	EmployeeID   int
	EmployeeName string
	WeekStart    string
	WeekEnd      string
	Hours        float64
}

func (w WeekSubmission) Subject() string {
	return fmt.Sprintf("Timesheet %s - %s submitted", w.WeekStart, w.WeekEnd)
}

func (w WeekSubmission) Text() string {
	who := w.EmployeeName
	if who == "" {
		who = fmt.Sprintf("Employee %d", w.EmployeeID)
	}
	return fmt.Sprintf("%s submitted the week %s - %s (%.1fh) for approval.", who, w.WeekStart, w.WeekEnd, w.Hours)
}

// WeekDecision is what an employee's team is told when a week is approved
// or rejected.
type WeekDecision struct {
	EmployeeID   int
	EmployeeName string
	WeekStart    string
	WeekEnd      string
	Status       model.EntryStatus
	By           string
}

func (d WeekDecision) Subject() string {
	return fmt.Sprintf("Timesheet %s - %s %s", d.WeekStart, d.WeekEnd, d.Status)
}

func (d WeekDecision) Text() string {
	who := d.EmployeeName
	if who == "" {
		who = fmt.Sprintf("Employee %d", d.EmployeeID)
	}
	return fmt.Sprintf("The week %s - %s of %s was %s by %s.", d.WeekStart, d.WeekEnd, who, d.Status, d.By)
}

// Reminder lists the incomplete days of a week still to be filled in.
type Reminder struct {
	EmployeeName string
	WeekStart    string
	Days         []string
}

func (r Reminder) Text() string {
	return fmt.Sprintf("%s: week %s is incomplete (%s).", r.EmployeeName, r.WeekStart, strings.Join(r.Days, ", "))
}

// Channel is one destination for notifications.
type Channel interface {
	NotifySubmission(ctx context.Context, s WeekSubmission) error
	NotifyDecision(ctx context.Context, d WeekDecision) error
	NotifyReminders(ctx context.Context, reminders []Reminder) error
}

// Notifier fans notifications out to every channel. Employee names are
// resolved through Names when set.
type Notifier struct {
	Channels []Channel
	Names    func(ctx context.Context, employeeID int) string
}

func (n *Notifier) WeekSubmitted(ctx context.Context, employeeID int, weekStart, weekEnd string, hours float64) error {
	s := WeekSubmission{EmployeeID: employeeID, WeekStart: weekStart, WeekEnd: weekEnd, Hours: hours}
	if n.Names != nil {
		s.EmployeeName = n.Names(ctx, employeeID)
	}
	var errs []error
	for _, ch := range n.Channels {
		if err := ch.NotifySubmission(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) WeekDecided(ctx context.Context, employeeID int, weekStart, weekEnd string, status model.EntryStatus, by string) error {
	d := WeekDecision{EmployeeID: employeeID, WeekStart: weekStart, WeekEnd: weekEnd, Status: status, By: by}
	if n.Names != nil {
		d.EmployeeName = n.Names(ctx, employeeID)
	}
	var errs []error
	for _, ch := range n.Channels {
		if err := ch.NotifyDecision(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Alerter is a channel that can also report job failures.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// Alert reports a failed job on every channel that supports alerts.
func (n *Notifier) Alert(ctx context.Context, message string) error {
	var errs []error
	for _, ch := range n.Channels {
		if a, ok := ch.(Alerter); ok {
			if err := a.Alert(ctx, message); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) Remind(ctx context.Context, reminders []Reminder) error {
	if len(reminders) == 0 {
		return nil
	}
	var errs []error
	for _, ch := range n.Channels {
		if err := ch.NotifyReminders(ctx, reminders); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
