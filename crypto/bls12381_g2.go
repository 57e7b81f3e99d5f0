package crypto

// G2 is the BLS12-381 twist curve y^2 = x^3 + 4(u+1) over Fp2. Same complete
// projective formulas as G1, generalized to the extension field.
type G2Affine struct {
	X, Y     Fp2
	Infinity Choice
}

type G2Projective struct {
	X, Y, Z Fp2
}

var g2GeneratorX = Fp2{
	C0: Fp{
		0xf5f28fa202940a10,
		0xb3f5fb2687b4961a,
		0xa1a893b53e2ae580,
		0x9894999d1a3caee9,
		0x6f67b7631863366b,
		0x058191924350bcd7,
	},
	C1: Fp{
		0xa5a9c0759e23f606,
		0xaaa0c59dbccd60c3,
		0x3bb17e18e2867806,
		0x1b1ab6cc8541b367,
		0xc2b6ed0ef2158547,
		0x11922a097360edf3,
	},
}

var g2GeneratorY = Fp2{
	C0: Fp{
		0x4c730af860494c4a,
		0x597cfa1f5e369c5a,
		0xe7e6856caa0a635a,
		0xbbefb5e96e0d495f,
		0x07d3a975f0ef25a2,
		0x0083fd8e7e80dae5,
	},
	C1: Fp{
		0xadc0fc92df64b05d,
		0x18aa270a2b1461dc,
		0x86adac6a3be4eba0,
		0x79495c4ec93da33a,
		0xe7175850a43ccaed,
		0x0b2bc2a163de1bf2,
	},
}

func G2Identity() G2Affine {
	return G2Affine{X: Fp2Zero(), Y: Fp2One(), Infinity: Choice(1)}
}

func G2Generator() G2Affine {
	return G2Affine{X: g2GeneratorX, Y: g2GeneratorY, Infinity: Choice(0)}
}

func (p G2Affine) IsIdentity() Choice { return p.Infinity }

func (p G2Affine) Neg() G2Affine {
	return G2Affine{
		X:        p.X,
		Y:        Fp2ConditionalSelect(p.Y.Neg(), Fp2One(), p.Infinity),
		Infinity: p.Infinity,
	}
}

func G2ConditionalSelect(a, b G2Affine, choice Choice) G2Affine {
	return G2Affine{
		X:        Fp2ConditionalSelect(a.X, b.X, choice),
		Y:        Fp2ConditionalSelect(a.Y, b.Y, choice),
		Infinity: Choice(conditionalSelectU8(uint8(a.Infinity), uint8(b.Infinity), choice)),
	}
}

func (p G2Affine) ToCurve() G2Projective {
	z := Fp2ConditionalSelect(Fp2One(), Fp2Zero(), p.Infinity)
	return G2Projective{X: p.X, Y: p.Y, Z: z}
}

func G2ProjectiveIdentity() G2Projective {
	return G2Projective{X: Fp2Zero(), Y: Fp2One(), Z: Fp2Zero()}
}

// fp2MulBy3b computes 12(u+1)*a over Fp2 -- the twist's curve coefficient is
// 4(u+1), so 3b = 12(u+1): the same doubling trick as fpMulBy3b for the
// factor 12, then one multiplication by the nonresidue (u+1).
func fp2MulBy3b(a Fp2) Fp2 {
	a = a.Add(a)
	a = a.Add(a)
	return a.Add(a).Add(a).MulByNonresidue()
}

func (p G2Projective) ToAffine() G2Affine {
	zinv, isNonzero := p.Z.Invert()
	x := p.X.Mul(zinv)
	y := p.Y.Mul(zinv)
	tmp := G2Affine{X: x, Y: y, Infinity: Choice(0)}
	return G2ConditionalSelect(G2Identity(), tmp, isNonzero)
}

// Double implements Algorithm 9 of Renes-Costello-Batina 2016 over Fp2.
func (p G2Projective) Double() G2Projective {
	t0 := p.Y.Square()
	z3 := t0.Add(t0)
	z3 = z3.Add(z3)
	z3 = z3.Add(z3)
	t1 := p.Y.Mul(p.Z)
	t2 := p.Z.Square()
	t2 = fp2MulBy3b(t2)
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

	return G2Projective{X: x3, Y: y3, Z: z3}
}

// Add implements Algorithm 7 of Renes-Costello-Batina 2016 over Fp2.
func (p G2Projective) Add(q G2Projective) G2Projective {
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
	t2 = fp2MulBy3b(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = fp2MulBy3b(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return G2Projective{X: x3, Y: y3, Z: z3}
}

func (p G2Projective) AddMixed(q G2Affine) G2Projective {
	return p.Add(q.ToCurve())
}

func (p G2Projective) Neg() G2Projective {
	return G2Projective{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

func (p G2Projective) CtEq(q G2Projective) Choice {
	x1z2 := p.X.Mul(q.Z)
	x2z1 := q.X.Mul(p.Z)
	y1z2 := p.Y.Mul(q.Z)
	y2z1 := q.Y.Mul(p.Z)

	bothIdentity := p.Z.IsZero().And(q.Z.IsZero())
	eitherIdentity := p.Z.IsZero().Or(q.Z.IsZero())

	same := x1z2.CtEq(x2z1).And(y1z2.CtEq(y2z1))
	return Choice(uint8(bothIdentity) | uint8(eitherIdentity.Not().And(same)))
}
