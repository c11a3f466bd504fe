// Package stats computes descriptive statistics over categorical color data.
//
// Numeric statistics (mean, median, variance) are computed on ordinal ranks:
// each distinct color is assigned a 1-based rank in lexicographic order, the
// statistic is computed over the ranks of all occurrences, and mean and median
// are mapped back to the color whose rank is closest.
//
// Every statistic is absent (nil) for empty input. Variance is also absent
// for a single observation.
package stats
