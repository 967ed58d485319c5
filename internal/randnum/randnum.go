// Package randnum generates random numeric strings used to exercise
// the words speller.
package randnum

import (
	"math/rand"
	"strings"
)

const digits = "0123456789"

// Default digit bounds for generated strings.
const (
	DefaultMaxIntegerDigits = 100
	DefaultMaxDecimalDigits = 10
)

// Generator produces random numeric strings from an injected source,
// so tests can seed it deterministically.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by the given source. A nil source
// falls back to the shared global one.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a Generator with its own deterministic source.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// IntegerString returns a digit string with no leading zero: a first
// digit 1-9 followed by up to maxDigits-2 further digits.
func (g *Generator) IntegerString(maxDigits int) string {
	var sb strings.Builder
	sb.WriteByte(digits[1+g.intn(9)])

	if maxDigits > 1 {
		count := g.intn(maxDigits - 1)
		for i := 0; i < count; i++ {
			sb.WriteByte(digits[g.intn(10)])
		}
	}
	return sb.String()
}

// NumberString returns an integer string or, with equal probability, a
// decimal string whose fractional run is bounded by maxDecimalDigits.
func (g *Generator) NumberString(maxIntegerDigits, maxDecimalDigits int) string {
	integer := g.IntegerString(maxIntegerDigits)

	if g.float64() < 0.5 {
		return integer
	}
	return integer + "." + g.IntegerString(maxDecimalDigits)
}

func (g *Generator) intn(n int) int {
	if g.rng == nil {
		return rand.Intn(n)
	}
	return g.rng.Intn(n)
}

func (g *Generator) float64() float64 {
	if g.rng == nil {
		return rand.Float64()
	}
	return g.rng.Float64()
}
