// Package binary draws reproducible random bit strings.
package binary

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultWidth is the number of bits drawn by default.
const DefaultWidth = 4

// MaxWidth is the widest bit string whose value fits in a uint64.
const MaxWidth = 64

// Number is a drawn bit string together with its unsigned base-2 value.
type Number struct {
	Bits  string
	Value uint64
}

// Generator draws independent uniform bits from a locally owned source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. Two generators built
// from the same seed produce the same sequence of draws.
func NewGenerator(seed int64) *Generator {
	s := uint64(seed)
	return &Generator{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Generate draws width bits, most significant first.
func (g *Generator) Generate(width int) (Number, error) {
	if width < 1 || width > MaxWidth {
		return Number{}, fmt.Errorf("bit width %d out of range [1, %d]", width, MaxWidth)
	}

	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		b.WriteByte('0' + byte(g.rng.IntN(2)))
	}

	bits := b.String()
	value, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return Number{}, err
	}
	return Number{Bits: bits, Value: value}, nil
}
