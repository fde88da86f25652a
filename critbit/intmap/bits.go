package intmap

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
	"golang.org/x/exp/constraints"
)

// Key is any fixed-width unsigned integer type.
type Key interface {
	constraints.Unsigned
}

// bitWidth returns the number of bits in K.
func bitWidth[K Key]() uint {
	var zero K
	return uint(popcount.Count(uint64(^zero)))
}

// leadingZeros counts zero bits of val starting from the most significant bit of K.
func leadingZeros[K Key](val K) uint {
	return uint(bits.LeadingZeros64(uint64(val))) - (64 - bitWidth[K]())
}

// rotateLeft rotates val left by n bits within the width of K.
func rotateLeft[K Key](val K, n uint) K {
	w := bitWidth[K]()
	n %= w
	// shifting by the full width yields zero for unsigned types
	return val<<n | val>>(w-n)
}

// bitAt tells whether the bit at pos (0 is the MSB) is set.
func bitAt[K Key](val K, pos uint) bool {
	return leadingZeros(rotateLeft(val, pos)) == 0
}

// critBit returns the position of the first bit (from the MSB) where a and b differ.
// The result equals the width of K when a == b.
func critBit[K Key](a, b K) uint {
	return leadingZeros(a ^ b)
}
