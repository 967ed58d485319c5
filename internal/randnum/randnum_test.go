package randnum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoconst/number-string/internal/words"
)

func TestIntegerStringShape(t *testing.T) {
	g := NewSeeded(1)
	for i := 0; i < 200; i++ {
		s := g.IntegerString(5)

		require.NotEmpty(t, s)
		assert.LessOrEqual(t, len(s), 4, "at most maxDigits-1 digits: %q", s)
		assert.NotEqual(t, byte('0'), s[0], "no leading zero: %q", s)
		for j := 0; j < len(s); j++ {
			assert.Contains(t, digits, string(s[j]))
		}
	}
}

func TestIntegerStringSingleDigitBound(t *testing.T) {
	g := NewSeeded(2)
	for i := 0; i < 50; i++ {
		assert.Len(t, g.IntegerString(1), 1)
	}
}

func TestNumberStringProducesBothForms(t *testing.T) {
	g := NewSeeded(3)
	integers, decimals := 0, 0

	for i := 0; i < 200; i++ {
		s := g.NumberString(8, 4)
		if strings.Contains(s, ".") {
			decimals++
			integer, fraction, _ := strings.Cut(s, ".")
			assert.NotEmpty(t, integer)
			assert.NotEmpty(t, fraction)
			assert.LessOrEqual(t, len(fraction), 3)
		} else {
			integers++
		}
	}

	assert.Positive(t, integers)
	assert.Positive(t, decimals)
}

// Every generated string must be accepted by the speller: that is the
// generator's whole purpose.
func TestGeneratedStringsAreSpellable(t *testing.T) {
	g := NewSeeded(4)
	speller := words.New()

	for i := 0; i < 200; i++ {
		s := g.NumberString(50, 10)
		_, err := speller.Number(s)
		assert.NoError(t, err, "input %q", s)
	}
}
