package stats

import (
	"math"
	"slices"
)

// RankMapping is a bijection from distinct colors to ranks 1..K, ordered
// lexicographically.
type RankMapping struct {
	colors []string
	ranks  map[string]int
}

// NewRankMapping builds the mapping over the distinct values of colors.
func NewRankMapping(colors []string) *RankMapping {
	distinct := slices.Clone(colors)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)

	ranks := make(map[string]int, len(distinct))
	for i, c := range distinct {
		ranks[c] = i + 1
	}
	return &RankMapping{colors: distinct, ranks: ranks}
}

// Len returns the number of distinct colors.
func (m *RankMapping) Len() int { return len(m.colors) }

// Colors returns the distinct colors in rank order.
func (m *RankMapping) Colors() []string { return slices.Clone(m.colors) }

// Rank returns the rank of color and whether it is known.
func (m *RankMapping) Rank(color string) (int, bool) {
	r, ok := m.ranks[color]
	return r, ok
}

// Ranks maps every occurrence in colors to its rank. Unknown colors are
// skipped.
func (m *RankMapping) Ranks(colors []string) []float64 {
	out := make([]float64, 0, len(colors))
	for _, c := range colors {
		if r, ok := m.ranks[c]; ok {
			out = append(out, float64(r))
		}
	}
	return out
}

// Nearest returns the color whose rank is closest to v. On a tie the lower
// rank wins. It returns false for an empty mapping.
func (m *RankMapping) Nearest(v float64) (string, bool) {
	if len(m.colors) == 0 {
		return "", false
	}
	best := m.colors[0]
	bestDist := math.Abs(1 - v)
	for i, c := range m.colors[1:] {
		if d := math.Abs(float64(i+2) - v); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}
