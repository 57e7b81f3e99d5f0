package crypto

// Carrying arithmetic on 64-bit limbs: the sole source of carry propagation
// used by the BLS12-381 field implementations below. Every wider operation
// (6-limb Fp, 4-limb Scalar) is built out of these three primitives over a
// 128-bit intermediate.

import "math/bits"

// adc adds a, b and an incoming carry, returning the sum and outgoing carry.
func adc(a, b, carry uint64) (uint64, uint64) {
	sum, c1 := bits.Add64(a, b, 0)
	sum, c2 := bits.Add64(sum, carry, 0)
	return sum, c1 + c2
}

// sbb subtracts b and an incoming borrow from a, returning the difference and
// an outgoing borrow. The borrow is treated as a full-word mask: callers must
// pass either 0 or ^uint64(0), and only bit 63 of the result is meaningful as
// the next borrow (extracted via borrow>>63 at call sites).
func sbb(a, b, borrow uint64) (uint64, uint64) {
	diff, b1 := bits.Sub64(a, b, 0)
	diff, b2 := bits.Sub64(diff, borrow>>63, 0)
	return diff, -(b1 + b2)
}

// mac computes a + b*c + carry over a 128-bit intermediate, returning the low
// 64 bits and the high 64 bits (the new carry).
func mac(a, b, c, carry uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(b, c)
	lo, c1 := bits.Add64(lo, a, 0)
	hi, _ = bits.Add64(hi, 0, c1)
	lo, c2 := bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, c2)
	return lo, hi
}
