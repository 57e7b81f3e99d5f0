package crypto

// Scalar is the BLS12-381 scalar field F_r, 4 little-endian 64-bit limbs in
// Montgomery form. Only subtraction, an 8-limb-input Montgomery reduction,
// and little-endian byte export are implemented — public inputs arrive over
// the JSON boundary already in Montgomery-form raw limbs and are consumed
// directly for the multi-scalar accumulation in the Groth16 verifier.
type Scalar [4]uint64

// scalarModulus is q, little-endian limbs.
var scalarModulus = Scalar{
	0xffffffff00000001,
	0x53bda402fffe5bfe,
	0x3339d80809a1d805,
	0x73eda753299d7d48,
}

// scalarInv = -q^-1 mod 2^64.
const scalarInv uint64 = 0xfffffffeffffffff

// scalarR = R mod q = 2^256 mod q, the Montgomery encoding of 1.
var scalarR = Scalar{
	0x00000001fffffffe,
	0x5884b7fa00034802,
	0x998c4fefecbc4ff5,
	0x1824b159acc5056f,
}

// ScalarOne is the multiplicative identity (R mod q, i.e. 1 in Montgomery
// form).
func ScalarOne() Scalar { return scalarR }

// ScalarFromRawUnchecked builds a Scalar directly from its Montgomery-form
// limbs, exactly as the JSON codec receives them.
func ScalarFromRawUnchecked(limbs [4]uint64) Scalar { return Scalar(limbs) }

// Raw returns the underlying Montgomery-form limbs.
func (a Scalar) Raw() [4]uint64 { return [4]uint64(a) }

func scalarSubtractQ(a [4]uint64) Scalar {
	var d Scalar
	borrow := uint64(0)
	for i := 0; i < 4; i++ {
		d[i], borrow = sbb(a[i], scalarModulus[i], borrow)
	}
	mask := Choice(borrow >> 63 & 1)
	return scalarConditionalSelect(d, Scalar(a), mask)
}

func scalarConditionalSelect(a, b Scalar, choice Choice) Scalar {
	var r Scalar
	for i := range r {
		r[i] = conditionalSelectU64(a[i], b[i], choice)
	}
	return r
}

// Sub returns a-b mod q.
func (a Scalar) Sub(b Scalar) Scalar {
	var diff [4]uint64
	borrow := uint64(0)
	for i := 0; i < 4; i++ {
		diff[i], borrow = sbb(a[i], b[i], borrow)
	}
	// diff is a-b, possibly wrapped mod 2^256; add q back if we borrowed.
	mask := -(borrow >> 63)
	var out [4]uint64
	carry := uint64(0)
	for i := 0; i < 4; i++ {
		out[i], carry = adc(diff[i], mask&scalarModulus[i], carry)
	}
	return Scalar(out)
}

// scalarMontgomeryReduce reduces an 8-limb value via CIOS. The result before
// the final subtraction lies in [0, 2q), not [q, 2q), so the subtraction of
// q must be conditional: add q back whenever it underflows, exactly like
// Scalar.Sub.
func scalarMontgomeryReduce(t [8]uint64) Scalar {
	var carry2 uint64
	for i := 0; i < 4; i++ {
		k := t[i] * scalarInv
		_, carry := mac(t[i], k, scalarModulus[0], 0)
		for j := 1; j < 4; j++ {
			t[i+j], carry = mac(t[i+j], k, scalarModulus[j], carry)
		}
		t[i+4], carry2 = adc(t[i+4], carry2, carry)
	}
	var out [4]uint64
	copy(out[:], t[4:8])

	var diff [4]uint64
	borrow := uint64(0)
	for i := 0; i < 4; i++ {
		diff[i], borrow = sbb(out[i], scalarModulus[i], borrow)
	}
	mask := -(borrow >> 63)
	var reduced [4]uint64
	carry := uint64(0)
	for i := 0; i < 4; i++ {
		reduced[i], carry = adc(diff[i], mask&scalarModulus[i], carry)
	}
	return Scalar(reduced)
}

// ToBytesLE runs montgomery_reduce(limbs..., 0,0,0,0) (dividing out R) and
// emits the canonical integer as 32 little-endian bytes.
func (a Scalar) ToBytesLE() [32]byte {
	reduced := scalarMontgomeryReduce([8]uint64{a[0], a[1], a[2], a[3], 0, 0, 0, 0})
	var out [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(reduced[i] >> (8 * j))
		}
	}
	return out
}
