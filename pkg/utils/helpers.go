package utils

import (
	"math"
	"time"
)

// Round2 rounds a currency value to two decimal places. Analytical
// math stays unrounded; this is applied only when composing output.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MonthsBetween returns the whole-month span between two dates,
// partial months rounded down. Argument order does not matter.
func MonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		a, b = b, a
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// YearsBetween returns whole years between two dates, partial years
// rounded down.
func YearsBetween(a, b time.Time) int {
	return MonthsBetween(a, b) / 12
}

// FormatMonth renders a date as the YYYY-MM bucket key used for
// monthly grouping. Zero-padded so lexical order matches time order.
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}
