package crypto

// G1 is the BLS12-381 curve y^2 = x^3 + 4 over Fp. Both affine and
// projective representations use the complete formulas of Renes, Costello
// and Batina (eprint.iacr.org/2015/1060) for a=0 short Weierstrass curves --
// not Jacobian coordinates -- so addition and doubling are branch-free over
// every input, including the point at infinity.
type G1Affine struct {
	X, Y     Fp
	Infinity Choice
}

type G1Projective struct {
	X, Y, Z Fp
}

// g1Generator* are the standard BLS12-381 G1 generator coordinates.
var g1GeneratorX = Fp{
	0x5cb38790fd530c16,
	0x7817fc679976fff5,
	0x154f95c7143ba1c1,
	0xf0ae6acdf3d0e747,
	0xedce6ecc21dbf440,
	0x120177419e0bfb75,
}

var g1GeneratorY = Fp{
	0xbaac93d50ce72271,
	0x8c22631a7918fd8e,
	0xdd595f13570725ce,
	0x51ac582950405194,
	0x0e1c8c3fad0059c0,
	0x0bbc3efc5008a26a,
}

func G1Identity() G1Affine {
	return G1Affine{X: FpZero(), Y: FpOne(), Infinity: Choice(1)}
}

func G1Generator() G1Affine {
	return G1Affine{X: g1GeneratorX, Y: g1GeneratorY, Infinity: Choice(0)}
}

func (p G1Affine) IsIdentity() Choice { return p.Infinity }

// Neg flips y, substituting Fp::one() when p is the identity so the stored y
// coordinate is never "negative zero".
func (p G1Affine) Neg() G1Affine {
	return G1Affine{
		X:        p.X,
		Y:        FpConditionalSelect(p.Y.Neg(), FpOne(), p.Infinity),
		Infinity: p.Infinity,
	}
}

func G1ConditionalSelect(a, b G1Affine, choice Choice) G1Affine {
	return G1Affine{
		X:        FpConditionalSelect(a.X, b.X, choice),
		Y:        FpConditionalSelect(a.Y, b.Y, choice),
		Infinity: Choice(conditionalSelectU8(uint8(a.Infinity), uint8(b.Infinity), choice)),
	}
}

// ToCurve lifts an affine point into projective coordinates.
func (p G1Affine) ToCurve() G1Projective {
	z := FpConditionalSelect(FpOne(), FpZero(), p.Infinity)
	return G1Projective{X: p.X, Y: p.Y, Z: z}
}

func G1ProjectiveIdentity() G1Projective {
	return G1Projective{X: FpZero(), Y: FpOne(), Z: FpZero()}
}

// mulBy3b computes 12*a -- the curve coefficient b=4, so 3b=12.
func fpMulBy3b(a Fp) Fp {
	a = a.Add(a) // 2a
	a = a.Add(a) // 4a
	return a.Add(a).Add(a) // 12a
}

// ToAffine converts back to affine, producing the identity when z is zero.
func (p G1Projective) ToAffine() G1Affine {
	zinv, isNonzero := p.Z.Invert()
	x := p.X.Mul(zinv)
	y := p.Y.Mul(zinv)
	tmp := G1Affine{X: x, Y: y, Infinity: Choice(0)}
	return G1ConditionalSelect(G1Identity(), tmp, isNonzero)
}

// Double implements Algorithm 9 of Renes-Costello-Batina 2016.
func (p G1Projective) Double() G1Projective {
	t0 := p.Y.Square()
	z3 := t0.Add(t0)
	z3 = z3.Add(z3)
	z3 = z3.Add(z3)
	t1 := p.Y.Mul(p.Z)
	t2 := p.Z.Square()
	t2 = fpMulBy3b(t2)
	x3 := t2.Mul(z3)
	y3 := t0.Add(t2)
	z3 = t1.Mul(z3)
	t1 = t2.Add(t2)
	t2 = t1.Add(t2)
	t0 = t0.Sub(t2)
	y3 = t0.Mul(y3)
	y3 = x3.Add(y3)
	t1 = p.X.Mul(p.Y)
	x3 = t0.Mul(t1)
	x3 = x3.Add(x3)

	return G1Projective{X: x3, Y: y3, Z: z3}
}

// Add implements Algorithm 7 of Renes-Costello-Batina 2016.
func (p G1Projective) Add(q G1Projective) G1Projective {
	t0 := p.X.Mul(q.X)
	t1 := p.Y.Mul(q.Y)
	t2 := p.Z.Mul(q.Z)
	t3 := p.X.Add(p.Y)
	t4 := q.X.Add(q.Y)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = p.Y.Add(p.Z)
	x3 := q.Y.Add(q.Z)
	t4 = t4.Mul(x3)
	x3 = t1.Add(t2)
	t4 = t4.Sub(x3)
	x3 = p.X.Add(p.Z)
	y3 := q.X.Add(q.Z)
	x3 = x3.Mul(y3)
	y3 = t0.Add(t2)
	y3 = x3.Sub(y3)
	x3 = t0.Add(t0)
	t0 = x3.Add(t0)
	t2 = fpMulBy3b(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = fpMulBy3b(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return G1Projective{X: x3, Y: y3, Z: z3}
}

func (p G1Projective) AddMixed(q G1Affine) G1Projective {
	return p.Add(q.ToCurve())
}

func (p G1Projective) Neg() G1Projective {
	return G1Projective{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// MulBytesLE performs double-and-add scalar multiplication over a 32-byte
// little-endian scalar, high to low. Byte 31's top bit is skipped: any
// reduced Fr scalar is below 2^255, so that bit is always zero.
func (p G1Affine) MulBytesLE(scalar [32]byte) G1Projective {
	acc := G1ProjectiveIdentity()
	base := p.ToCurve()
	for i := 31; i >= 0; i-- {
		top := 7
		if i == 31 {
			top = 6
		}
		for j := top; j >= 0; j-- {
			acc = acc.Double()
			if (scalar[i]>>uint(j))&1 == 1 {
				acc = acc.Add(base)
			}
		}
	}
	return acc
}

func (p G1Projective) CtEq(q G1Projective) Choice {
	// (x1*z2 == x2*z1) && (y1*z2 == y2*z1) when neither point is the
	// identity; two identities are equal, and an identity never equals a
	// non-identity point.
	x1z2 := p.X.Mul(q.Z)
	x2z1 := q.X.Mul(p.Z)
	y1z2 := p.Y.Mul(q.Z)
	y2z1 := q.Y.Mul(p.Z)

	bothIdentity := p.Z.IsZero().And(q.Z.IsZero())
	eitherIdentity := p.Z.IsZero().Or(q.Z.IsZero())

	same := x1z2.CtEq(x2z1).And(y1z2.CtEq(y2z1))
	return Choice(uint8(bothIdentity) | uint8(eitherIdentity.Not().And(same)))
}
