package crypto

// Choice is a branchless boolean: 0 or 1, never inspected with an `if` in
// the arithmetic core. Every consumer of a Choice must use
// ConditionalSelect/And/Or/Not instead of branching on its value directly.
type Choice uint8

func choiceOf(b uint64) Choice {
	// b is 0 or 1 by construction at all call sites.
	return Choice(b & 1)
}

// And returns the branchless logical AND of two choices.
func (c Choice) And(o Choice) Choice { return Choice(uint8(c) & uint8(o)) }

// Or returns the branchless logical OR of two choices.
func (c Choice) Or(o Choice) Choice { return Choice(uint8(c) | uint8(o)) }

// Not returns the branchless logical NOT of a choice.
func (c Choice) Not() Choice { return Choice(uint8(c) ^ 1) }

// IsTrue reports whether the choice is set. This is the one place a Choice
// is allowed to drive a Go `if` — at the boundary where a caller decides
// whether to surface a result, not inside field/group arithmetic.
func (c Choice) IsTrue() bool { return c == 1 }

// ctEqU64 returns 1 if a == b, 0 otherwise, without branching.
func ctEqU64(a, b uint64) Choice {
	x := a ^ b
	// x == 0 iff a == b. Fold all 64 bits down to one via OR-shifts, then
	// invert so that "all zero" maps to 1.
	x |= x >> 32
	x |= x >> 16
	x |= x >> 8
	x |= x >> 4
	x |= x >> 2
	x |= x >> 1
	return Choice((x ^ 1) & 1)
}

// conditionalSelectU64 returns a when choice is 0, b when choice is 1,
// without branching, using the two's-complement mask -(int64)choice.
func conditionalSelectU64(a, b uint64, choice Choice) uint64 {
	mask := -uint64(choice & 1)
	return a ^ (mask & (a ^ b))
}

// conditionalSelectU8 is the byte-valued analogue of conditionalSelectU64.
func conditionalSelectU8(a, b uint8, choice Choice) uint8 {
	mask := uint8(-(int8(choice & 1)))
	return a ^ (mask & (a ^ b))
}
