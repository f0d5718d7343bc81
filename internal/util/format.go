package util

import (
	"math"
	"strconv"
	"strings"
)

// Fixed formats v with the given number of decimals.
// Non-finite values render as "NaN", "+Inf" or "-Inf".
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Fixed2 formats v with two decimals, the precision results are shown with.
func Fixed2(v float64) string {
	return Fixed(v, 2)
}

// Fixed6 formats v with six decimals, the precision derived densities and
// ratios are shown with.
func Fixed6(v float64) string {
	return Fixed(v, 6)
}

// Compact formats v with the shortest representation that round-trips,
// e.g. 1.55125e-10 or 31.44.
func Compact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Decimal formats v with the shortest representation that round-trips
// and at least one decimal, e.g. 31.44 or 1099.0.
func Decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// Round rounds v to the given number of decimals (half away from zero).
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Rule returns a horizontal rule of the given width. Widths below 1 yield
// an empty string.
func Rule(width int) string {
	if width < 1 {
		return ""
	}
	return strings.Repeat("-", width)
}
