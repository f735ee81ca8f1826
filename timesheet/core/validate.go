package core

import (
	"math"
	"time"
)

type IncompleteDay struct {
	Date    string  `json:"date"`
	Total   float64 `json:"total"`
	Missing float64 `json:"missing"`
}

type OverLimitDay struct {
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Excess float64 `json:"excess"`
}

type WeekValidation struct {
	IsValid        bool            `json:"isValid"`
	DayTotals      [7]float64      `json:"dayTotals"`
	WeekTotal      float64         `json:"weekTotal"`
	IncompleteDays []IncompleteDay `json:"incompleteDays"`
	OverLimitDays  []OverLimitDay  `json:"overLimitDays"`
}

func tenths(h float64) int64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return int64(math.Round(h * 10))
}

const fullDayTenths = int64(HoursPerDay * 10)

// dayComplete reports whether a weekday holds exactly a full day of hours.
// Weekends are never complete.
func dayComplete(day time.Time, total float64) bool {
	return !IsWeekend(day) && tenths(total) == fullDayTenths
}

// ValidateWeek checks the seven day totals. Every weekday must total exactly
// HoursPerDay and is reported as over limit above it. Weekend hours only
// count towards the week total.
func ValidateWeek(week Week, totals [7]float64) WeekValidation {
	v := WeekValidation{
		DayTotals:      totals,
		IncompleteDays: []IncompleteDay{},
		OverLimitDays:  []OverLimitDay{},
	}

	var weekTotal int64
	for i, day := range week {
		t := tenths(totals[i])
		weekTotal += t
		if IsWeekend(day) {
			continue
		}

		key := DateKey(day)
		if !dayComplete(day, totals[i]) {
			v.IncompleteDays = append(v.IncompleteDays, IncompleteDay{
				Date:    key,
				Total:   float64(t) / 10,
				Missing: float64(fullDayTenths-t) / 10,
			})
		}
		if t > fullDayTenths {
			v.OverLimitDays = append(v.OverLimitDays, OverLimitDay{
				Date:   key,
				Total:  float64(t) / 10,
				Excess: float64(t-fullDayTenths) / 10,
			})
		}
	}

	v.WeekTotal = float64(weekTotal) / 10
	v.IsValid = len(v.IncompleteDays) == 0
	return v
}

// ValidateRows validates the day totals of reconciled rows.
func ValidateRows(rows []DisplayRow, week Week) WeekValidation {
	return ValidateWeek(week, DayTotals(rows, week))
}
