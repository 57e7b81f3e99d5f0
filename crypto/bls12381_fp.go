package crypto

// BLS12-381 base field F_p, 6 little-endian 64-bit limbs in Montgomery form
// with R = 2^384 mod p. Every Fp value stored anywhere in this package is
// already the Montgomery representation a*R mod p; fpFromU64 is the only
// conversion from a canonical integer, and Fp has no byte import/export (the
// JSON codec carries the Montgomery limbs unchanged).
//
// Constants below are transcribed bit-exact from the reference BLS12-381
// field implementation; any deviation silently breaks every pairing built on
// top of this type.
type Fp [6]uint64

// fpModulus is p, little-endian limbs.
var fpModulus = Fp{
	0xb9feffffffffaaab,
	0x1eabfffeb153ffff,
	0x6730d2a0f6b0f624,
	0x64774b84f38512bf,
	0x4b1ba7b6434bacd7,
	0x1a0111ea397fe69a,
}

// fpInv = -p^-1 mod 2^64, the Montgomery reduction constant.
const fpInv uint64 = 0x89f3fffcfffcfffd

// fpR = R mod p = 2^384 mod p. This is also Fp's multiplicative identity in
// Montgomery form.
var fpR = Fp{
	0x760900000002fffd,
	0xebf4000bc40c0002,
	0x5f48985753c758ba,
	0x77ce585370525745,
	0x5c071a97a256ec6d,
	0x15f65ec3fa80e493,
}

// fpR2 = R^2 mod p, used to convert into Montgomery form.
var fpR2 = Fp{
	0xf4df1f341c341746,
	0x0a76e6a609d104f1,
	0x8de5476c4c95b6d5,
	0x67eb88a9939d83c0,
	0x9a793e85b519952d,
	0x11988fe592cae3aa,
}

// fpR3 = R^3 mod p. No function in this package references it.
var fpR3 = Fp{
	0xed48ac6bd94ca1e0,
	0x315f831e03a7adf8,
	0x9a53352a615e29dd,
	0x34c04e5e921e1761,
	0x2512d43565724728,
	0x0aa6346091755d4d,
}

// fpPMinus2 = p - 2, the Fermat's-little-theorem exponent used by Invert.
var fpPMinus2 = Fp{
	0xb9feffffffffaaa9,
	0x1eabfffeb153ffff,
	0x6730d2a0f6b0f624,
	0x64774b84f38512bf,
	0x4b1ba7b6434bacd7,
	0x1a0111ea397fe69a,
}

// fpB is the G1 curve coefficient (y^2 = x^3 + 4), in Montgomery form.
var fpB = fpFromU64(4)

// FpZero is the additive identity.
func FpZero() Fp { return Fp{} }

// FpOne is the multiplicative identity (R mod p, i.e. 1 in Montgomery form).
func FpOne() Fp { return fpR }

// FpFromRawUnchecked builds an Fp directly from its Montgomery-form limbs,
// performing no conversion. This is how the JSON codec constructs Fp values,
// since the wire format carries the Montgomery representation unchanged.
func FpFromRawUnchecked(limbs [6]uint64) Fp { return Fp(limbs) }

// fpFromU64 converts a small non-negative integer into Montgomery form.
func fpFromU64(v uint64) Fp {
	return Fp{v, 0, 0, 0, 0, 0}.mul(fpR2)
}

// Raw returns the underlying Montgomery-form limbs.
func (a Fp) Raw() [6]uint64 { return [6]uint64(a) }

// IsZero reports whether a is the additive identity.
func (a Fp) IsZero() Choice {
	z := uint64(0)
	for _, l := range a {
		z |= l
	}
	return ctEqU64(z, 0)
}

// CtEq reports whether a == b without branching.
func (a Fp) CtEq(b Fp) Choice {
	c := Choice(1)
	for i := range a {
		c = c.And(ctEqU64(a[i], b[i]))
	}
	return c
}

// FpConditionalSelect returns a when choice is 0, b when choice is 1.
func FpConditionalSelect(a, b Fp, choice Choice) Fp {
	var r Fp
	for i := range r {
		r[i] = conditionalSelectU64(a[i], b[i], choice)
	}
	return r
}

// fpSubtractP subtracts the modulus from a 6-limb intermediate, selecting
// the subtracted value only if no borrow occurred — i.e. only if a >= p.
// This is the single idiom used by add (and so sub) and montgomeryReduce.
func fpSubtractP(a [6]uint64) Fp {
	var d Fp
	borrow := uint64(0)
	for i := 0; i < 6; i++ {
		d[i], borrow = sbb(a[i], fpModulus[i], borrow)
	}
	// If borrow is set, a < p, and we must keep the original `a` value.
	mask := Choice(borrow >> 63 & 1)
	return FpConditionalSelect(d, Fp(a), mask)
}

// Add returns a+b mod p.
func (a Fp) Add(b Fp) Fp {
	var sum [6]uint64
	carry := uint64(0)
	for i := 0; i < 6; i++ {
		sum[i], carry = adc(a[i], b[i], carry)
	}
	return fpSubtractP(sum)
}

// Neg returns -a mod p, zero when a is zero.
func (a Fp) Neg() Fp {
	var d Fp
	borrow := uint64(0)
	for i := 0; i < 6; i++ {
		d[i], borrow = sbb(fpModulus[i], a[i], borrow)
	}
	return FpConditionalSelect(d, Fp{}, a.IsZero())
}

// Sub returns a-b mod p.
func (a Fp) Sub(b Fp) Fp {
	return a.Add(b.Neg())
}

// montgomeryReduce performs CIOS reduction of a 12-limb double-width product
// down to 6 limbs: six rounds of k = t_i*INV mod 2^64, accumulate k*p into
// the window starting at t_i, and thread the resulting overflow into t_{i+6}
// across rounds.
func fpMontgomeryReduce(t [12]uint64) Fp {
	var carry2 uint64
	for i := 0; i < 6; i++ {
		k := t[i] * fpInv
		_, carry := mac(t[i], k, fpModulus[0], 0)
		for j := 1; j < 6; j++ {
			t[i+j], carry = mac(t[i+j], k, fpModulus[j], carry)
		}
		t[i+6], carry2 = adc(t[i+6], carry2, carry)
	}
	var out [6]uint64
	copy(out[:], t[6:12])
	return fpSubtractP(out)
}

// Mul returns a*b mod p via schoolbook 6x6->12-limb multiplication followed
// by Montgomery reduction.
func (a Fp) Mul(b Fp) Fp { return a.mul(b) }

func (a Fp) mul(b Fp) Fp {
	var t [12]uint64
	for i := 0; i < 6; i++ {
		carry := uint64(0)
		for j := 0; j < 6; j++ {
			t[i+j], carry = mac(t[i+j], a[i], b[j], carry)
		}
		t[i+6] = carry
	}
	return fpMontgomeryReduce(t)
}

// Square returns a*a mod p.
func (a Fp) Square() Fp {
	var t [12]uint64
	// Doubled cross terms a[i]*a[j], i<j.
	carry := uint64(0)
	t[1], carry = mac(0, a[0], a[1], 0)
	t[2], carry = mac(0, a[0], a[2], carry)
	t[3], carry = mac(0, a[0], a[3], carry)
	t[4], carry = mac(0, a[0], a[4], carry)
	t[5], carry = mac(0, a[0], a[5], carry)
	t[6] = carry

	carry = 0
	t[3], carry = mac(t[3], a[1], a[2], 0)
	t[4], carry = mac(t[4], a[1], a[3], carry)
	t[5], carry = mac(t[5], a[1], a[4], carry)
	t[6], carry = mac(t[6], a[1], a[5], carry)
	t[7] = carry

	carry = 0
	t[5], carry = mac(t[5], a[2], a[3], 0)
	t[6], carry = mac(t[6], a[2], a[4], carry)
	t[7], carry = mac(t[7], a[2], a[5], carry)
	t[8] = carry

	carry = 0
	t[7], carry = mac(t[7], a[3], a[4], 0)
	t[8], carry = mac(t[8], a[3], a[5], carry)
	t[9] = carry

	carry = 0
	t[9], carry = mac(t[9], a[4], a[5], 0)
	t[10] = carry

	// Double the accumulated cross terms (t[11] and t[0] start at zero).
	for i := 11; i >= 1; i-- {
		t[i] = (t[i] << 1) | (t[i-1] >> 63)
	}

	// Add the diagonal terms a[i]*a[i].
	var carry2 uint64
	t[0], carry2 = mac(0, a[0], a[0], 0)
	t[1], carry2 = adc(t[1], carry2, 0)
	t[2], carry2 = mac(t[2], a[1], a[1], carry2)
	t[3], carry2 = adc(t[3], carry2, 0)
	t[4], carry2 = mac(t[4], a[2], a[2], carry2)
	t[5], carry2 = adc(t[5], carry2, 0)
	t[6], carry2 = mac(t[6], a[3], a[3], carry2)
	t[7], carry2 = adc(t[7], carry2, 0)
	t[8], carry2 = mac(t[8], a[4], a[4], carry2)
	t[9], carry2 = adc(t[9], carry2, 0)
	t[10], carry2 = mac(t[10], a[5], a[5], carry2)
	t[11], _ = adc(t[11], carry2, 0)

	return fpMontgomeryReduce(t)
}

// Invert returns (a^-1, 1) when a != 0, and an unspecified value paired with
// 0 when a == 0. Callers MUST gate on the returned Choice.
func (a Fp) Invert() (Fp, Choice) {
	return a.powVartime(fpPMinus2), a.IsZero().Not()
}

// powVartime computes a^by via square-and-multiply, branching on the bits of
// by (a public constant at every call site in this package — see fpPMinus2).
func (a Fp) powVartime(by [6]uint64) Fp {
	res := FpOne()
	for i := 5; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			res = res.Square()
			if (by[i]>>uint(j))&1 == 1 {
				res = res.mul(a)
			}
		}
	}
	return res
}
