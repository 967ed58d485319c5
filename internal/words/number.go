package words

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse reports input that is neither an integer string, a decimal
// string, nor a supported numeric type.
var ErrParse = errors.New("cannot parse number")

var (
	// An optional sign, then either "0" or a no-leading-zero digit run.
	// Underscores may separate digit groups for readability: "1_000".
	integerPattern = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*(_[0-9]+)*)$`)

	// Fractional digits after the decimal point. Leading zeros are
	// meaningful here ("3.05" is "three point zero five").
	fractionPattern = regexp.MustCompile(`^[0-9]+(_[0-9]+)*$`)
)

// Number spells a numeric string: either an integer ("1_234", "-42") or
// a decimal ("12.34"). Anything else fails with ErrParse.
func (s *Speller) Number(input string) (string, error) {
	if integerPattern.MatchString(input) {
		return s.Big(parseInteger(input))
	}

	integer, fraction, found := strings.Cut(input, ".")
	if !found || !integerPattern.MatchString(integer) || !fractionPattern.MatchString(fraction) {
		return "", fmt.Errorf("%w: %q", ErrParse, input)
	}

	integerPhrase, err := s.Big(parseInteger(integer))
	if err != nil {
		return "", err
	}
	return integerPhrase + " point " + fractionWords(fraction), nil
}

// Float spells a float64 using its shortest decimal representation.
// Values with no fractional part spell as plain integers; NaN and the
// infinities fail with ErrParse.
func (s *Speller) Float(f float64) (string, error) {
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(text, "NI") {
		return "", fmt.Errorf("%w: %v", ErrParse, f)
	}

	integer, fraction, found := strings.Cut(text, ".")
	n, _ := new(big.Int).SetString(integer, 10)
	phrase, err := s.Big(n)
	if err != nil {
		return "", err
	}
	if !found {
		return phrase, nil
	}
	return phrase + " point " + fractionWords(fraction), nil
}

// Spell is the dispatching entry point: it accepts a numeric string,
// any built-in integer kind, a float, or a *big.Int, and routes it to
// the matching speller method.
func (s *Speller) Spell(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return s.Number(v)
	case int:
		return s.Int(int64(v)), nil
	case int8:
		return s.Int(int64(v)), nil
	case int16:
		return s.Int(int64(v)), nil
	case int32:
		return s.Int(int64(v)), nil
	case int64:
		return s.Int(v), nil
	case uint:
		return s.Big(new(big.Int).SetUint64(uint64(v)))
	case uint8:
		return s.Int(int64(v)), nil
	case uint16:
		return s.Int(int64(v)), nil
	case uint32:
		return s.Int(int64(v)), nil
	case uint64:
		return s.Big(new(big.Int).SetUint64(v))
	case *big.Int:
		return s.Big(v)
	case float32:
		return s.Float(float64(v))
	case float64:
		return s.Float(v)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrParse, value)
	}
}

// Spell converts a numeric value to plain English with the conjunction
// enabled. See Speller.Spell.
func Spell(value any) (string, error) {
	return New().Spell(value)
}

// parseInteger converts a string already validated against
// integerPattern, so (s *Speller).Big is the only place overflow can
// surface.
func parseInteger(text string) *big.Int {
	n, _ := new(big.Int).SetString(strings.ReplaceAll(text, "_", ""), 10)
	return n
}

// fractionWords speaks fractional digits one at a time, e.g. "34"
// becomes "three four", never "thirty-four".
func fractionWords(fraction string) string {
	names := make([]string, 0, len(fraction))
	for _, r := range fraction {
		if r == '_' {
			continue
		}
		names = append(names, digitNames[r-'0'])
	}
	return strings.Join(names, " ")
}
