package crypto

// Fp6 is the cubic extension c0 + c1*v + c2*v^2 with v^3 = u+1 (u from Fp2).
type Fp6 struct {
	C0, C1, C2 Fp2
}

// fp6FrobeniusC1 and fp6FrobeniusC2 are the fixed twist constants used by
// Fp6.FrobeniusMap, transcribed bit-exact from the BLS12-381 reference.
var fp6FrobeniusC1 = Fp2{
	C0: Fp{},
	C1: Fp{
		0xcd03c9e48671f071,
		0x5dab22461fcda5d2,
		0x587042afd3851b95,
		0x8eb60ebe01bacb9e,
		0x03f97d6e83d050d2,
		0x18f0206554638741,
	},
}

var fp6FrobeniusC2 = Fp2{
	C0: Fp{
		0x890dc9e4867545c3,
		0x2af322533285a5d5,
		0x50880866309b7e2c,
		0xa20d1b8c7e881024,
		0x14e4f04fe2db9068,
		0x14e56d3f1564853a,
	},
	C1: Fp{},
}

func Fp6Zero() Fp6 { return Fp6{} }
func Fp6One() Fp6  { return Fp6{C0: Fp2One()} }

func Fp6FromFp2(f Fp2) Fp6 { return Fp6{C0: f} }

func (a Fp6) Add(b Fp6) Fp6 {
	return Fp6{C0: a.C0.Add(b.C0), C1: a.C1.Add(b.C1), C2: a.C2.Add(b.C2)}
}

func (a Fp6) Sub(b Fp6) Fp6 {
	return Fp6{C0: a.C0.Sub(b.C0), C1: a.C1.Sub(b.C1), C2: a.C2.Sub(b.C2)}
}

func (a Fp6) Neg() Fp6 {
	return Fp6{C0: a.C0.Neg(), C1: a.C1.Neg(), C2: a.C2.Neg()}
}

// MulByNonresidue multiplies by v: component shift with the top component
// scaled by the Fp2 nonresidue (1+u).
func (a Fp6) MulByNonresidue() Fp6 {
	return Fp6{C0: a.C2.MulByNonresidue(), C1: a.C0, C2: a.C1}
}

// Mul is Karatsuba-3 multiplication.
func (a Fp6) Mul(b Fp6) Fp6 {
	t0 := a.C0.Mul(b.C0)
	t1 := a.C1.Mul(b.C1)
	t2 := a.C2.Mul(b.C2)

	c0 := a.C1.Add(a.C2).Mul(b.C1.Add(b.C2)).Sub(t1).Sub(t2).MulByNonresidue().Add(t0)
	c1 := a.C0.Add(a.C1).Mul(b.C0.Add(b.C1)).Sub(t0).Sub(t1).Add(t2.MulByNonresidue())
	c2 := a.C0.Add(a.C2).Mul(b.C0.Add(b.C2)).Sub(t0).Add(t1).Sub(t2)

	return Fp6{C0: c0, C1: c1, C2: c2}
}

// Square is the Chung-Hasan SQR3 formula.
func (a Fp6) Square() Fp6 {
	s0 := a.C0.Square()
	ab := a.C0.Mul(a.C1)
	s1 := ab.Add(ab)
	s2 := a.C0.Sub(a.C1).Add(a.C2).Square()
	bc := a.C1.Mul(a.C2)
	s3 := bc.Add(bc)
	s4 := a.C2.Square()

	c0 := s3.MulByNonresidue().Add(s0)
	c1 := s4.MulByNonresidue().Add(s1)
	c2 := s1.Add(s2).Add(s3).Sub(s0).Sub(s4)

	return Fp6{C0: c0, C1: c1, C2: c2}
}

// MulBy1 is the sparse multiplication by Fp6(0, c1, 0).
func (a Fp6) MulBy1(c1 Fp2) Fp6 {
	return Fp6{
		C0: a.C2.Mul(c1).MulByNonresidue(),
		C1: a.C0.Mul(c1),
		C2: a.C1.Mul(c1),
	}
}

// MulBy01 is the sparse multiplication by Fp6(c0, c1, 0).
func (a Fp6) MulBy01(c0, c1 Fp2) Fp6 {
	aa := a.C0.Mul(c0)
	bb := a.C1.Mul(c1)

	t1 := a.C2.Mul(c1).MulByNonresidue().Add(aa)
	t2 := c0.Add(c1).Mul(a.C0.Add(a.C1)).Sub(aa).Sub(bb)
	t3 := a.C2.Mul(c0).Add(bb)

	return Fp6{C0: t1, C1: t2, C2: t3}
}

// FrobeniusMap applies Fp2's frobenius to each component then scales c1, c2
// by the fixed twist constants above.
func (a Fp6) FrobeniusMap() Fp6 {
	c0 := a.C0.FrobeniusMap()
	c1 := a.C1.FrobeniusMap().Mul(fp6FrobeniusC1)
	c2 := a.C2.FrobeniusMap().Mul(fp6FrobeniusC2)
	return Fp6{C0: c0, C1: c1, C2: c2}
}

// Invert returns (a^-1, 1) when a != 0, garbage paired with 0 otherwise.
func (a Fp6) Invert() (Fp6, Choice) {
	c0 := a.C0.Square().Sub(a.C1.Mul(a.C2).MulByNonresidue())
	c1 := a.C2.Square().MulByNonresidue().Sub(a.C0.Mul(a.C1))
	c2 := a.C1.Square().Sub(a.C0.Mul(a.C2))

	t := a.C2.Mul(c1).Add(a.C1.Mul(c2)).MulByNonresidue().Add(a.C0.Mul(c0))
	tInv, isNonzero := t.Invert()

	return Fp6{C0: tInv.Mul(c0), C1: tInv.Mul(c1), C2: tInv.Mul(c2)}, isNonzero
}

func (a Fp6) IsZero() Choice {
	return a.C0.IsZero().And(a.C1.IsZero()).And(a.C2.IsZero())
}

func (a Fp6) CtEq(b Fp6) Choice {
	return a.C0.CtEq(b.C0).And(a.C1.CtEq(b.C1)).And(a.C2.CtEq(b.C2))
}

func Fp6ConditionalSelect(a, b Fp6, choice Choice) Fp6 {
	return Fp6{
		C0: Fp2ConditionalSelect(a.C0, b.C0, choice),
		C1: Fp2ConditionalSelect(a.C1, b.C1, choice),
		C2: Fp2ConditionalSelect(a.C2, b.C2, choice),
	}
}
