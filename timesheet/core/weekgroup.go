package core

import (
	"sort"
	"time"

	"timesheet.app/timesheet/timesheet/model"
	"timesheet.app/timesheet/utils"
)

// WeekGroup is every entry of one employee within one Monday..Sunday window.
type WeekGroup struct {
	EmployeeID   int               `json:"employeeId"`
	EmployeeName string            `json:"employeeName"`
	WeekStart    string            `json:"weekStart"`
	WeekEnd      string            `json:"weekEnd"`
	Status       model.EntryStatus `json:"status"`
	TotalHours   float64           `json:"totalHours"`
	Entries      []model.TimeEntry `json:"entries"`
}

// WeekStatus is the common status of the entries, or mixed when they differ.
func WeekStatus(entries []model.TimeEntry) model.EntryStatus {
	if len(entries) == 0 {
		return model.StatusPending
	}
	first := entries[0].Status
	if utils.All(entries, func(e model.TimeEntry) bool { return e.Status == first }) {
		return first
	}
	return model.StatusMixed
}

type groupKey struct {
	employeeID int
	monday     string
}

// GroupWeeks groups entries by employee and week, newest week first. Entries
// of unknown employees are left out. With pendingOnly only pending entries
// are grouped.
func GroupWeeks(entries []model.TimeEntry, employees []model.Employee, pendingOnly bool) []WeekGroup {
	byID := utils.IndexBy(employees, func(e model.Employee) int { return e.ID })
	groups := make(map[groupKey]*WeekGroup)
	var order []groupKey

	for _, entry := range entries {
		if pendingOnly && entry.Status != model.StatusPending {
			continue
		}
		employee, ok := byID[entry.EmployeeID]
		if !ok {
			continue
		}
		day, err := time.Parse(DateLayout, entry.Date)
		if err != nil {
			continue
		}
		week := WeekOf(day)
		key := groupKey{employeeID: entry.EmployeeID, monday: DateKey(week.Monday())}
		g, ok := groups[key]
		if !ok {
			g = &WeekGroup{
				EmployeeID:   employee.ID,
				EmployeeName: employee.FullName(),
				WeekStart:    key.monday,
				WeekEnd:      DateKey(week.Sunday()),
			}
			groups[key] = g
			order = append(order, key)
		}
		g.Entries = append(g.Entries, entry)
	}

	out := make([]WeekGroup, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.Status = WeekStatus(g.Entries)
		g.TotalHours = SumHours(utils.Map(g.Entries, func(e model.TimeEntry) float64 { return e.Hours })...)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WeekStart != out[j].WeekStart {
			return out[i].WeekStart > out[j].WeekStart
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out
}

// EntrySummary is the manager overview of a filtered list of entries.
type EntrySummary struct {
	TotalHours   float64 `json:"totalHours"`
	PendingCount int     `json:"pendingCount"`
	Count        int     `json:"count"`
}

func Summarize(entries []model.TimeEntry) EntrySummary {
	return EntrySummary{
		TotalHours:   SumHours(utils.Map(entries, func(e model.TimeEntry) float64 { return e.Hours })...),
		PendingCount: len(utils.Filter(entries, func(e model.TimeEntry) bool { return e.Status == model.StatusPending })),
		Count:        len(entries),
	}
}

// FilterByStatus keeps entries with the given status; an empty status keeps all.
func FilterByStatus(entries []model.TimeEntry, status model.EntryStatus) []model.TimeEntry {
	if status == "" {
		return entries
	}
	return utils.Filter(entries, func(e model.TimeEntry) bool { return e.Status == status })
}
