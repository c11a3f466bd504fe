package stats

import (
	"maps"
	"slices"
)

// Frequencies counts occurrences per color.
type Frequencies map[string]int

// Entry is one color and its count.
type Entry struct {
	Color string
	Count int
}

// Count tallies colors.
func Count(colors []string) Frequencies {
	f := make(Frequencies, len(colors))
	for _, c := range colors {
		f[c]++
	}
	return f
}

// Total returns the number of observations.
func (f Frequencies) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// Entries returns the counts sorted by color.
func (f Frequencies) Entries() []Entry {
	keys := slices.Sorted(maps.Keys(f))
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Color: k, Count: f[k]}
	}
	return out
}

// Mode returns the most frequent color. Ties go to the lexicographically
// smallest color. It returns false when f is empty.
func (f Frequencies) Mode() (string, bool) {
	var (
		best  string
		count int
	)
	for _, e := range f.Entries() {
		if e.Count > count {
			best, count = e.Color, e.Count
		}
	}
	return best, count > 0
}

// Mode returns the most frequent color in colors. See Frequencies.Mode.
func Mode(colors []string) (string, bool) {
	return Count(colors).Mode()
}

// Probability returns the share of observations equal to target, or 0 for
// empty input.
func Probability(colors []string, target string) float64 {
	if len(colors) == 0 {
		return 0
	}
	n := 0
	for _, c := range colors {
		if c == target {
			n++
		}
	}
	return float64(n) / float64(len(colors))
}
