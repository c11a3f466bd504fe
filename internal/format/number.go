package format

import "strconv"

// FormatFloat returns the shortest decimal form of v that round-trips.
// Whole values print without a fractional part, e.g. 2 rather than 2.0.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatProbability renders p with two decimals.
func FormatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
