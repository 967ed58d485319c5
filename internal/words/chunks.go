package words

import (
	"iter"
	"math/big"
)

var oneThousand = big.NewInt(1000)

// chunks yields the base-1000 digit groups of the absolute value of n,
// least significant first. Each group is in [0, 999]. Zero yields an
// empty sequence; callers must special-case it. The caller's value is
// never mutated.
func chunks(n *big.Int) iter.Seq[int] {
	return func(yield func(int) bool) {
		rest := new(big.Int).Abs(n)
		group := new(big.Int)
		for rest.Sign() != 0 {
			rest.QuoRem(rest, oneThousand, group)
			if !yield(int(group.Int64())) {
				return
			}
		}
	}
}
