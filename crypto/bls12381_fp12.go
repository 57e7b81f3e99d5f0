package crypto

// Fp12 is the sextic extension c0 + c1*w with w^2 = v (v from Fp6). This is
// the target ring of the pairing before final exponentiation projects into
// the cyclotomic subgroup Gt.
type Fp12 struct {
	C0, C1 Fp6
}

// fp12FrobeniusC1 scales c1 in Fp12.FrobeniusMap: (u+1)^((p-1)/6).
var fp12FrobeniusC1 = Fp6{
	C0: Fp2{
		C0: Fp{
			0x07089552b319d465,
			0xc6695f92b50a8313,
			0x97e83cccd117228f,
			0xa35baecab2dc29ee,
			0x1ce393ea5daace4d,
			0x08f2220fb0fb66eb,
		},
		C1: Fp{
			0xb2f66aad4ce5d646,
			0x5842a06bfc497cec,
			0xcf4895d42599d394,
			0xc11b9cba40a8e8d0,
			0x2e3813cbe5a0de89,
			0x110eefda88847faf,
		},
	},
}

func Fp12Zero() Fp12 { return Fp12{} }
func Fp12One() Fp12  { return Fp12{C0: Fp6One()} }

func Fp12FromFp6(f Fp6) Fp12 { return Fp12{C0: f} }

func (a Fp12) Add(b Fp12) Fp12 {
	return Fp12{C0: a.C0.Add(b.C0), C1: a.C1.Add(b.C1)}
}

func (a Fp12) Sub(b Fp12) Fp12 {
	return Fp12{C0: a.C0.Sub(b.C0), C1: a.C1.Sub(b.C1)}
}

// Conjugate negates c1 -- also the Fp12 analogue of "raise to the p^6" used
// by the easy part of final exponentiation.
func (a Fp12) Conjugate() Fp12 {
	return Fp12{C0: a.C0, C1: a.C1.Neg()}
}

// MulBy014 is the sparse multiplication used by every Miller-loop line
// evaluation: note the triple (c0,c1,c4) is consumed in that exact order,
// not (c0,c1,c2) -- ell() relies on this specific argument reordering.
func (a Fp12) MulBy014(c0, c1, c4 Fp2) Fp12 {
	aa := a.C0.MulBy01(c0, c1)
	bb := a.C1.MulBy1(c4)
	o := c1.Add(c4)
	cc1 := a.C1.Add(a.C0)
	cc1 = cc1.MulBy01(c0, o)
	cc1 = cc1.Sub(aa).Sub(bb)
	cc0 := bb.MulByNonresidue()
	cc0 = cc0.Add(aa)
	return Fp12{C0: cc0, C1: cc1}
}

func (a Fp12) FrobeniusMap() Fp12 {
	c0 := a.C0.FrobeniusMap()
	c1 := a.C1.FrobeniusMap().Mul(fp12FrobeniusC1)
	return Fp12{C0: c0, C1: c1}
}

// Invert returns (a^-1, 1) when a != 0, garbage paired with 0 otherwise.
func (a Fp12) Invert() (Fp12, Choice) {
	t, isNonzero := a.C0.Square().Sub(a.C1.Square().MulByNonresidue()).Invert()
	return Fp12{C0: a.C0.Mul(t), C1: a.C1.Mul(t).Neg()}, isNonzero
}

func (a Fp12) Square() Fp12 {
	ab := a.C0.Mul(a.C1)
	c0c1 := a.C0.Add(a.C1)
	c0 := a.C1.MulByNonresidue()
	c0 = c0.Add(a.C0)
	c0 = c0.Mul(c0c1)
	c0 = c0.Sub(ab)
	c1 := ab.Add(ab)
	c0 = c0.Sub(ab.MulByNonresidue())
	return Fp12{C0: c0, C1: c1}
}

func (a Fp12) Mul(b Fp12) Fp12 {
	aa := a.C0.Mul(b.C0)
	bb := a.C1.Mul(b.C1)
	o := b.C0.Add(b.C1)
	c1 := a.C1.Add(a.C0)
	c1 = c1.Mul(o)
	c1 = c1.Sub(aa)
	c1 = c1.Sub(bb)
	c0 := bb.MulByNonresidue()
	c0 = c0.Add(aa)
	return Fp12{C0: c0, C1: c1}
}

func (a Fp12) IsZero() Choice {
	return a.C0.IsZero().And(a.C1.IsZero())
}

func (a Fp12) CtEq(b Fp12) Choice {
	return a.C0.CtEq(b.C0).And(a.C1.CtEq(b.C1))
}

func Fp12ConditionalSelect(a, b Fp12, choice Choice) Fp12 {
	return Fp12{
		C0: Fp6ConditionalSelect(a.C0, b.C0, choice),
		C1: Fp6ConditionalSelect(a.C1, b.C1, choice),
	}
}
