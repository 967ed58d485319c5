// Package words spells numbers in plain English, e.g. 1234 becomes
// "one thousand, two hundred and thirty-four". It supports integers up
// to MaxValue and decimal strings whose fractional digits are spoken
// one at a time ("twelve point three four").
package words

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// ErrTooLarge reports a magnitude beyond the last scale word. The
// speller rejects such inputs rather than truncating them.
var ErrTooLarge = errors.New("number exceeds the largest supported magnitude")

// Speller converts numbers to their plain-English words. The zero value
// omits the conjunction; use New for the conventional default. Spellers
// are stateless and safe for concurrent use.
type Speller struct {
	// UseAnd inserts "and" between a chunk's hundreds word and its
	// tens-or-units phrase: "one hundred and two" vs "one hundred two".
	UseAnd bool
}

// New returns a Speller with the conjunction enabled.
func New() *Speller {
	return &Speller{UseAnd: true}
}

// Int spells a signed integer. Every int64 is within the supported
// magnitude, so unlike Big this cannot fail.
func (s *Speller) Int(n int64) string {
	phrase, _ := s.Big(big.NewInt(n))
	return phrase
}

// Big spells an arbitrary-precision integer. It returns ErrTooLarge
// when the magnitude of n exceeds MaxValue.
func (s *Speller) Big(n *big.Int) (string, error) {
	if n.Sign() == 0 {
		return digitNames[0], nil
	}

	var phrases []string
	position := 0
	for group := range chunks(n) {
		if group != 0 {
			scale, err := scaleWord(position)
			if err != nil {
				return "", err
			}
			phrase := s.chunkName(group)
			if scale != "" {
				phrase += " " + scale
			}
			phrases = append(phrases, phrase)
		}
		position++
	}

	// Chunks arrive least significant first; humans read the other way.
	slices.Reverse(phrases)
	joined := strings.Join(phrases, ", ")

	if n.Sign() < 0 {
		return "minus " + joined, nil
	}
	return joined, nil
}

// chunkName spells a value in [0, 999] with no scale suffix. Zero
// produces the empty string: zero chunks are skipped by Big, never
// spoken inside a larger number.
func (s *Speller) chunkName(value int) string {
	hundreds := value / 100
	remainder := value % 100

	var parts []string
	if hundreds != 0 {
		parts = append(parts, digitNames[hundreds], "hundred")
		if s.UseAnd && remainder != 0 {
			parts = append(parts, "and")
		}
	}
	if remainder != 0 {
		parts = append(parts, smallName(remainder))
	}
	return strings.Join(parts, " ")
}

// smallName spells a value in [1, 99].
func smallName(value int) string {
	if name, ok := smallNames[value]; ok {
		return name
	}
	if value < 10 {
		return digitNames[value]
	}
	digit := value % 10
	return smallNames[value-digit] + "-" + digitNames[digit]
}

// scaleWord returns the magnitude word for a chunk position: nothing
// for the units chunk, "thousand" for position 1, then the illion
// series. Positions past the root table are rejected with ErrTooLarge.
func scaleWord(position int) (string, error) {
	switch {
	case position == 0:
		return "", nil
	case position == 1:
		return "thousand", nil
	case position-2 < len(illionRoots):
		return illionRoots[position-2] + "illion", nil
	default:
		return "", fmt.Errorf("chunk position %d: %w", position, ErrTooLarge)
	}
}
