package core

import (
	"fmt"
	"math"
)

// Centihours is a fixed-point hour quantity in hundredths of an hour.
// Totals are accumulated in this unit so that 0.5 step values sum exactly.
type Centihours int64

const (
	HoursPerDay = 8.0
	// MaxHoursPerCell is the most a single cell can hold.
	MaxHoursPerCell = 24.0
	hourStep        = 0.5

	fullDay Centihours = 800

	// hours beyond this would overflow when scaled to centihours
	maxConvertible = float64(math.MaxInt64/100) / 100
)

// FromHours treats NaN and infinities as zero and saturates values that do
// not fit.
func FromHours(h float64) Centihours {
	switch {
	case math.IsNaN(h) || math.IsInf(h, 0):
		return 0
	case h > maxConvertible:
		return math.MaxInt64 / 100
	case h < -maxConvertible:
		return -(math.MaxInt64 / 100)
	}
	return Centihours(math.Round(h * 100))
}

// Hours rounds to one decimal.
func (c Centihours) Hours() float64 {
	return math.Round(float64(c)/10) / 10
}

func SumHours(values ...float64) float64 {
	var sum Centihours
	for _, v := range values {
		sum += FromHours(v)
	}
	return sum.Hours()
}

// CheckHours accepts multiples of half an hour between 0 and MaxHoursPerCell.
func CheckHours(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return fmt.Errorf("%w: hours must be a non-negative number", ErrInvalidHours)
	}
	if h > MaxHoursPerCell {
		return fmt.Errorf("%w: hours must be at most %.0f", ErrInvalidHours, MaxHoursPerCell)
	}
	steps := h / hourStep
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return fmt.Errorf("%w: hours must be a multiple of %.1f", ErrInvalidHours, hourStep)
	}
	return nil
}
