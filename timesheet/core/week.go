package core

import (
	"fmt"
	"time"

	"timesheet.app/timesheet/utils"
)

const DateLayout = "2006-01-02" // yyyy-MM-dd

// Week holds the seven local-midnight dates Monday..Sunday.
type Week [7]time.Time

// MondayOf returns the Monday at local midnight of the ISO week containing t.
func MondayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func WeekDays(monday time.Time) Week {
	var week Week
	y, m, d := monday.Date()
	for i := range week {
		week[i] = time.Date(y, m, d+i, 0, 0, 0, 0, monday.Location())
	}
	return week
}

// WeekOf is WeekDays(MondayOf(t)).
func WeekOf(t time.Time) Week {
	return WeekDays(MondayOf(t))
}

// DateKey formats the local calendar day of t. It never converts to UTC.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", key, err)
	}
	return t, nil
}

// NormalizeDateKey accepts either a date key or a full timestamp and returns
// the date key of the calendar day it denotes in loc.
func NormalizeDateKey(raw string, loc *time.Location) (string, error) {
	if t, err := time.ParseInLocation(DateLayout, raw, loc); err == nil {
		return DateKey(t), nil
	}
	t, err := utils.ParseISOTime(raw, loc)
	if err != nil {
		return "", err
	}
	return DateKey(t.In(loc)), nil
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekendKey reports whether the date key falls on Saturday or Sunday.
// Unparseable keys report false.
func IsWeekendKey(key string) bool {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return false
	}
	return IsWeekend(t)
}

func (w Week) Monday() time.Time {
	return w[0]
}

func (w Week) Sunday() time.Time {
	return w[6]
}

func (w Week) Keys() [7]string {
	var keys [7]string
	for i, day := range w {
		keys[i] = DateKey(day)
	}
	return keys
}

// Index returns the position of the date key within the week, or -1.
func (w Week) Index(key string) int {
	for i, day := range w {
		if DateKey(day) == key {
			return i
		}
	}
	return -1
}

func (w Week) Contains(key string) bool {
	return w.Index(key) >= 0
}

func (w Week) Next() Week {
	return WeekDays(w[0].AddDate(0, 0, 7))
}

func (w Week) Previous() Week {
	return WeekDays(w[0].AddDate(0, 0, -7))
}
