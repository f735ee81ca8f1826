package utils

import "strconv"

// FormatHours renders hours with at most one decimal, e.g. 8 or 7.5.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
