package crypto

// Fp2 is the quadratic extension c0 + c1*u with u^2 = -1.
type Fp2 struct {
	C0, C1 Fp
}

func Fp2Zero() Fp2 { return Fp2{} }
func Fp2One() Fp2  { return Fp2{C0: FpOne()} }

func (a Fp2) Add(b Fp2) Fp2 {
	return Fp2{C0: a.C0.Add(b.C0), C1: a.C1.Add(b.C1)}
}

func (a Fp2) Sub(b Fp2) Fp2 {
	return Fp2{C0: a.C0.Sub(b.C0), C1: a.C1.Sub(b.C1)}
}

func (a Fp2) Neg() Fp2 {
	return Fp2{C0: a.C0.Neg(), C1: a.C1.Neg()}
}

// Conjugate returns c0 - c1*u, which also implements frobenius_map on Fp2
// (raising to p flips the sign of the non-residue component).
func (a Fp2) Conjugate() Fp2 {
	return Fp2{C0: a.C0, C1: a.C1.Neg()}
}

func (a Fp2) FrobeniusMap() Fp2 { return a.Conjugate() }

// MulByNonresidue multiplies by (1+u), the nonresidue used to build Fp6.
func (a Fp2) MulByNonresidue() Fp2 {
	return Fp2{C0: a.C0.Sub(a.C1), C1: a.C0.Add(a.C1)}
}

// Mul computes (a0+a1 u)(b0+b1 u) via Karatsuba.
func (a Fp2) Mul(b Fp2) Fp2 {
	t0 := a.C0.Mul(b.C0)
	t1 := a.C1.Mul(b.C1)
	c0 := t0.Sub(t1)
	c1 := a.C0.Add(a.C1).Mul(b.C0.Add(b.C1)).Sub(t0).Sub(t1)
	return Fp2{C0: c0, C1: c1}
}

// Square uses the complex-squaring formula: (c0+c1)(c0-c1), 2*c0*c1.
func (a Fp2) Square() Fp2 {
	c0 := a.C0.Add(a.C1).Mul(a.C0.Sub(a.C1))
	c1 := a.C0.Mul(a.C1).Add(a.C0.Mul(a.C1))
	return Fp2{C0: c0, C1: c1}
}

func (a Fp2) MulScalar(s Fp) Fp2 {
	return Fp2{C0: a.C0.Mul(s), C1: a.C1.Mul(s)}
}

// Invert returns (a^-1, 1) when a != 0, garbage paired with 0 otherwise.
func (a Fp2) Invert() (Fp2, Choice) {
	norm := a.C0.Square().Add(a.C1.Square())
	normInv, isNonzero := norm.Invert()
	return Fp2{C0: a.C0.Mul(normInv), C1: a.C1.Neg().Mul(normInv)}, isNonzero
}

func (a Fp2) IsZero() Choice {
	return a.C0.IsZero().And(a.C1.IsZero())
}

func (a Fp2) CtEq(b Fp2) Choice {
	return a.C0.CtEq(b.C0).And(a.C1.CtEq(b.C1))
}

func Fp2ConditionalSelect(a, b Fp2, choice Choice) Fp2 {
	return Fp2{
		C0: FpConditionalSelect(a.C0, b.C0, choice),
		C1: FpConditionalSelect(a.C1, b.C1, choice),
	}
}
