package words

import (
	"math/big"
	"sync"
)

// digitNames maps a single digit 0-9 to its word.
var digitNames = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// smallNames maps the values below one hundred that have a word of their
// own: the irregular teens 10-19 and the exact tens 20-90. Everything
// else below one hundred is a hyphen compound of a tens word and a digit
// word, e.g. "thirty-four".
var smallNames = map[int]string{
	10: "ten",
	11: "eleven",
	12: "twelve",
	13: "thirteen",
	14: "fourteen",
	15: "fifteen",
	16: "sixteen",
	17: "seventeen",
	18: "eighteen",
	19: "nineteen",
	20: "twenty",
	30: "thirty",
	40: "forty",
	50: "fifty",
	60: "sixty",
	70: "seventy",
	80: "eighty",
	90: "ninety",
}

// illionRoots lists scale-word prefixes in magnitude order: index i is
// the root for 10^(3*(i+2)), so illionRoots[0]+"illion" is one million.
// Position encodes meaning, so the sequence is append-only.
var illionRoots = [...]string{
	"m",
	"b",
	"tr",
	"quadr",
	"quint",
	"sext",
	"sept",
	"oct",
	"non",
	"dec",
	"undec",
	"duodec",
	"tredec",
	"quattuordec",
	"quindec",
	"sexdec",
	"septendec",
	"octodec",
	"novemdec",
	"vigint",
	"unvigint",
	"duovigint",
	"trevigint",
	"quattuorvigint",
	"quinvigint",
	"sexvigint",
	"septenvigint",
	"octovigint",
	"novemvigint",
	"trigint",
	"untrigint",
	"duotrigint",
}

var maxValue = sync.OnceValue(func() *big.Int {
	// 10^(3*(len(illionRoots)+2)) - 1: every chunk position up to and
	// including the last illion root filled with 999.
	exponent := int64(3 * (len(illionRoots) + 2))
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(exponent), nil)
	return max.Sub(max, big.NewInt(1))
})

// MaxValue returns the largest magnitude the speller supports. The
// result is a fresh copy each call, safe for the caller to mutate.
func MaxValue() *big.Int {
	return new(big.Int).Set(maxValue())
}
