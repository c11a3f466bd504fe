package stats

import "slices"

// Summary holds the descriptive statistics for one color sequence. Nil
// fields are absent.
type Summary struct {
	Count       int
	Mode        *string
	MeanColor   *string
	MedianColor *string
	Mean        *float64
	Median      *float64
	Variance    *float64
	Ranks       *RankMapping
}

// Summarize computes mode, mean color, median color and sample variance.
func Summarize(colors []string) Summary {
	s := Summary{Count: len(colors), Ranks: NewRankMapping(colors)}
	if len(colors) == 0 {
		return s
	}

	if mode, ok := Mode(colors); ok {
		s.Mode = &mode
	}

	values := s.Ranks.Ranks(colors)

	mean := Mean(values)
	s.Mean = &mean
	if c, ok := s.Ranks.Nearest(mean); ok {
		s.MeanColor = &c
	}

	median := Median(values)
	s.Median = &median
	if c, ok := s.Ranks.Nearest(median); ok {
		s.MedianColor = &c
	}

	if v, ok := SampleVariance(values); ok {
		s.Variance = &v
	}
	return s
}

// Mean returns the arithmetic mean of values, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value, or the average of the two middle values
// for an even count. It returns 0 for empty input.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// SampleVariance returns the unbiased (N-1) variance. It returns false when
// fewer than two values are given.
func SampleVariance(values []float64) (float64, bool) {
	n := len(values)
	if n < 2 {
		return 0, false
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return ss / float64(n-1), true
}
