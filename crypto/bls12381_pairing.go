package crypto

// Pairing engine: the optimal ate Miller loop over BLS12-381, its G2Prepared
// precomputation, and the final exponentiation into the cyclotomic subgroup
// Gt. Every formula here is transcribed bit-exact from the reference
// BLS12-381 pairing implementation. The Miller loop itself is driven by a
// small polymorphic interface so the same bit-scanning loop can collect line
// coefficients, accumulate a single pairing, or accumulate several terms at
// once.

// blsX is the BLS12-381 curve parameter, negative.
const blsX uint64 = 0xd201000000010000

const blsXIsNegative = true

// Gt is the pairing target group, the image of FinalExponentiation.
type Gt struct {
	Data Fp12
}

func GtIdentity() Gt { return Gt{Data: Fp12One()} }

func (g Gt) CtEq(o Gt) Choice { return g.Data.CtEq(o.Data) }

func GtConditionalSelect(a, b Gt, choice Choice) Gt {
	return Gt{Data: Fp12ConditionalSelect(a.Data, b.Data, choice)}
}

// G2Prepared holds the 68 precomputed line-coefficient triples consumed by
// the Miller loop for a fixed G2 point.
type G2Prepared struct {
	Infinity Choice
	Coeffs   [68][3]Fp2
}

// millerLoopDriver is the polymorphic strategy the Miller loop schedule
// consumes; three concrete instantiations follow (triple collector, single
// pairing, multi pairing).
type millerLoopDriver interface {
	one() Fp12
	doublingStep(f Fp12) Fp12
	additionStep(f Fp12) Fp12
	squareOutput(f Fp12) Fp12
	conjugate(f Fp12) Fp12
}

// millerLoop runs the fixed BLS12-381 Miller-loop schedule: skip the bits of
// X>>1 up to and including the first set bit, then for every remaining bit
// perform a doubling step,
// an addition step if the bit is set, and square the output; finally one
// extra doubling step and a conjugation (X is negative).
func millerLoop(d millerLoopDriver) Fp12 {
	f := d.one()
	foundOne := false
	for b := 63; b >= 0; b-- {
		bit := ((blsX>>1)>>uint(b))&1 == 1
		if !foundOne {
			foundOne = bit
			continue
		}
		f = d.doublingStep(f)
		if bit {
			f = d.additionStep(f)
		}
		f = d.squareOutput(f)
	}
	f = d.doublingStep(f)
	f = d.conjugate(f)
	return f
}

// doublingStep is Algorithm 26 of eprint.iacr.org/2010/354, mutating r and
// returning its line-coefficient triple in the reference's (tmp0,tmp3,tmp6)
// ordering.
func doublingStep(r *G2Projective) [3]Fp2 {
	tmp0 := r.X.Square()
	tmp1 := r.Y.Square()
	tmp2 := tmp1.Square()
	tmp3 := tmp1.Add(r.X).Square().Sub(tmp0).Sub(tmp2)
	tmp3 = tmp3.Add(tmp3)
	tmp4 := tmp0.Add(tmp0).Add(tmp0)
	tmp6 := r.X.Add(tmp4)
	tmp5 := tmp4.Square()
	zsquared := r.Z.Square()
	r.X = tmp5.Sub(tmp3).Sub(tmp3)
	r.Z = r.Z.Add(r.Y).Square().Sub(tmp1).Sub(zsquared)
	r.Y = tmp3.Sub(r.X).Mul(tmp4)
	tmp2 = tmp2.Add(tmp2)
	tmp2 = tmp2.Add(tmp2)
	tmp2 = tmp2.Add(tmp2)
	r.Y = r.Y.Sub(tmp2)
	tmp3 = tmp4.Mul(zsquared)
	tmp3 = tmp3.Add(tmp3)
	tmp3 = tmp3.Neg()
	tmp6 = tmp6.Square().Sub(tmp0).Sub(tmp5)
	tmp1 = tmp1.Add(tmp1)
	tmp1 = tmp1.Add(tmp1)
	tmp6 = tmp6.Sub(tmp1)
	tmp0 = r.Z.Mul(zsquared)
	tmp0 = tmp0.Add(tmp0)

	return [3]Fp2{tmp0, tmp3, tmp6}
}

// additionStep is Algorithm 27 of eprint.iacr.org/2010/354, mutating r and
// returning its line-coefficient triple in the reference's (t10,t1,t9)
// ordering.
func additionStep(r *G2Projective, q G2Affine) [3]Fp2 {
	zsquared := r.Z.Square()
	ysquared := q.Y.Square()
	t0 := zsquared.Mul(q.X)
	t1 := q.Y.Add(r.Z).Square().Sub(ysquared).Sub(zsquared).Mul(zsquared)
	t2 := t0.Sub(r.X)
	t3 := t2.Square()
	t4 := t3.Add(t3)
	t4 = t4.Add(t4)
	t5 := t4.Mul(t2)
	t6 := t1.Sub(r.Y).Sub(r.Y)
	t9 := t6.Mul(q.X)
	t7 := t4.Mul(r.X)
	r.X = t6.Square().Sub(t5).Sub(t7).Sub(t7)
	r.Z = r.Z.Add(t2).Square().Sub(zsquared).Sub(t3)
	t10 := q.Y.Add(r.Z)
	t8 := t7.Sub(r.X).Mul(t6)
	t0b := r.Y.Mul(t5)
	t0b = t0b.Add(t0b)
	r.Y = t8.Sub(t0b)
	t10 = t10.Square().Sub(ysquared)
	ztsquared := r.Z.Square()
	t10 = t10.Sub(ztsquared)
	t9 = t9.Add(t9).Sub(t10)
	t10 = r.Z.Add(r.Z)
	t6 = t6.Neg()
	t1 = t6.Add(t6)

	return [3]Fp2{t10, t1, t9}
}

// ell evaluates the line function: scale c0 by p.y and c1 by p.x, then apply
// the sparse mul_by_014 -- note the (c2,c1,c0) reordering of the stored
// triple.
func ell(f Fp12, coeffs [3]Fp2, p G1Affine) Fp12 {
	c0 := Fp2{C0: coeffs[0].C0.Mul(p.Y), C1: coeffs[0].C1.Mul(p.Y)}
	c1 := Fp2{C0: coeffs[1].C0.Mul(p.X), C1: coeffs[1].C1.Mul(p.X)}
	return f.MulBy014(coeffs[2], c1, c0)
}

// --- Driver 1: triple collector, used by G2PreparedFrom ---

type tripleCollector struct {
	cur    G2Projective
	base   G2Affine
	coeffs []([3]Fp2)
}

func (d *tripleCollector) one() Fp12 { return Fp12{} }
func (d *tripleCollector) doublingStep(f Fp12) Fp12 {
	d.coeffs = append(d.coeffs, doublingStep(&d.cur))
	return f
}
func (d *tripleCollector) additionStep(f Fp12) Fp12 {
	d.coeffs = append(d.coeffs, additionStep(&d.cur, d.base))
	return f
}
func (d *tripleCollector) squareOutput(f Fp12) Fp12 { return f }
func (d *tripleCollector) conjugate(f Fp12) Fp12    { return f }

// G2PreparedFrom precomputes the 68 line-coefficient triples for q. If q is
// the identity, the generator is substituted for the arithmetic (so the
// schedule stays well-defined) but the identity flag is preserved.
func G2PreparedFrom(q G2Affine) G2Prepared {
	isIdentity := q.IsIdentity()
	qq := G2ConditionalSelect(q, G2Generator(), isIdentity)

	d := &tripleCollector{cur: qq.ToCurve(), base: qq, coeffs: make([]([3]Fp2), 0, 68)}
	millerLoop(d)

	var out G2Prepared
	out.Infinity = isIdentity
	copy(out.Coeffs[:], d.coeffs)
	return out
}

// --- Driver 2: single pairing ---

type singlePairing struct {
	cur  G2Projective
	base G2Affine
	p    G1Affine
}

func (d *singlePairing) one() Fp12 { return Fp12One() }
func (d *singlePairing) doublingStep(f Fp12) Fp12 {
	c := doublingStep(&d.cur)
	return ell(f, c, d.p)
}
func (d *singlePairing) additionStep(f Fp12) Fp12 {
	c := additionStep(&d.cur, d.base)
	return ell(f, c, d.p)
}
func (d *singlePairing) squareOutput(f Fp12) Fp12 { return f.Square() }
func (d *singlePairing) conjugate(f Fp12) Fp12    { return f.Conjugate() }

// Pairing computes e(p,q) = FinalExponentiation(MillerLoop(p,q)).
func Pairing(p G1Affine, q G2Affine) Gt {
	eitherIdentity := p.IsIdentity().Or(q.IsIdentity())
	pp := G1ConditionalSelect(p, G1Generator(), eitherIdentity)
	qq := G2ConditionalSelect(q, G2Generator(), eitherIdentity)

	d := &singlePairing{cur: qq.ToCurve(), base: qq, p: pp}
	f := millerLoop(d)
	result := FinalExponentiation(f)
	return GtConditionalSelect(result, GtIdentity(), eitherIdentity)
}

// --- Driver 3: multi pairing ---

// PairingTerm pairs a fixed G1 point with a prepared G2 point, as consumed
// by MultiMillerLoop (the Groth16 verifier's three-term product).
type PairingTerm struct {
	P    G1Affine
	Prep G2Prepared
}

type multiPairing struct {
	terms []PairingTerm
	index int
}

func (d *multiPairing) one() Fp12 { return Fp12One() }

func (d *multiPairing) step(f Fp12) Fp12 {
	idx := d.index
	for _, term := range d.terms {
		eitherIdentity := term.P.IsIdentity().Or(term.Prep.Infinity)
		newF := ell(f, term.Prep.Coeffs[idx], term.P)
		f = Fp12ConditionalSelect(newF, f, eitherIdentity)
	}
	d.index++
	return f
}

func (d *multiPairing) doublingStep(f Fp12) Fp12 { return d.step(f) }
func (d *multiPairing) additionStep(f Fp12) Fp12 { return d.step(f) }
func (d *multiPairing) squareOutput(f Fp12) Fp12 { return f.Square() }
func (d *multiPairing) conjugate(f Fp12) Fp12    { return f.Conjugate() }

// MultiMillerLoop evaluates the product of Miller loops over several
// (G1Affine, G2Prepared) terms, without the final exponentiation.
func MultiMillerLoop(terms []PairingTerm) Fp12 {
	d := &multiPairing{terms: terms}
	return millerLoop(d)
}

// MillerLoop evaluates a single (G1Affine, G2Prepared) term's Miller loop,
// without the final exponentiation. Since Fp12 multiplication commutes with
// squaring ((xy)^2 = x^2*y^2), the product of several independently-computed
// MillerLoop outputs equals MultiMillerLoop over the same terms -- callers
// that want to fan the terms out across goroutines can use this instead of
// MultiMillerLoop and multiply the results themselves.
func MillerLoop(p G1Affine, prep G2Prepared) Fp12 {
	d := &multiPairing{terms: []PairingTerm{{P: p, Prep: prep}}}
	return millerLoop(d)
}

// --- Final exponentiation ---

// fp4Square is the Granger-Scott helper used twice per cyclotomicSquare.
func fp4Square(a, b Fp2) (Fp2, Fp2) {
	t0 := a.Square()
	t1 := b.Square()
	t2 := t1.MulByNonresidue()
	c0 := t2.Add(t0)
	t2 = a.Add(b)
	t2 = t2.Square()
	t2 = t2.Sub(t0)
	t2 = t2.Sub(t1)
	return c0, t2
}

// cyclotomicSquare squares an element of the cyclotomic subgroup via the
// Granger-Scott formula (Algorithm 5.5.4, Guide to Pairing-Based
// Cryptography / eprint.iacr.org/2009/565).
func cyclotomicSquare(f Fp12) Fp12 {
	z0 := f.C0.C0
	z4 := f.C0.C1
	z3 := f.C0.C2
	z2 := f.C1.C0
	z1 := f.C1.C1
	z5 := f.C1.C2

	t0, t1 := fp4Square(z0, z1)

	z0 = t0.Sub(z0)
	z0 = z0.Add(z0).Add(t0)

	z1 = t1.Add(z1)
	z1 = z1.Add(z1).Add(t1)

	t0b, t1b := fp4Square(z2, z3)
	t2, t3 := fp4Square(z4, z5)

	z4 = t0b.Sub(z4)
	z4 = z4.Add(z4).Add(t0b)

	z5 = t1b.Add(z5)
	z5 = z5.Add(z5).Add(t1b)

	t0c := t3.MulByNonresidue()
	z2 = t0c.Add(z2)
	z2 = z2.Add(z2).Add(t0c)

	z3 = t2.Sub(z3)
	z3 = z3.Add(z3).Add(t2)

	return Fp12{
		C0: Fp6{C0: z0, C1: z4, C2: z3},
		C1: Fp6{C0: z2, C1: z1, C2: z5},
	}
}

// cyclotomicExp computes f^X via square-and-multiply over the bits of X
// (found-one gating, same schedule as the Miller loop), then conjugates
// because X is negative.
func cyclotomicExp(f Fp12) Fp12 {
	tmp := Fp12One()
	foundOne := false
	for b := 63; b >= 0; b-- {
		bit := (blsX>>uint(b))&1 == 1
		if foundOne {
			tmp = cyclotomicSquare(tmp)
		} else {
			foundOne = bit
		}
		if bit {
			tmp = tmp.Mul(f)
		}
	}
	return tmp.Conjugate()
}

// FinalExponentiation raises f to (p^12-1)/r, projecting the Miller-loop
// output into the order-r cyclotomic subgroup Gt. The easy part uses
// frobenius_map^6 and one inversion; the hard part uses the fixed
// cyclotomic addition chain transcribed from the BLS12-381 reference.
//
// Known defect (carried intentionally, not fixed): if invert signals zero
// (f == 0), the result is replaced by Fp12{} (zero) rather than an error.
// Unreachable for well-formed Miller-loop output -- a substituted zero just
// fails the verifier's final comparison like any other invalid proof.
func FinalExponentiation(f Fp12) Gt {
	t0 := f.FrobeniusMap().FrobeniusMap().FrobeniusMap().
		FrobeniusMap().FrobeniusMap().FrobeniusMap()

	t1, isNonzero := f.Invert()
	t2 := t0.Mul(t1)
	t1 = t2
	t2 = t2.FrobeniusMap().FrobeniusMap()
	t2 = t2.Mul(t1)
	t1 = cyclotomicSquare(t2).Conjugate()
	t3 := cyclotomicExp(t2)
	t4 := cyclotomicSquare(t3)
	t5 := t1.Mul(t3)
	t1 = cyclotomicExp(t5)
	t0 = cyclotomicExp(t1)
	t6 := cyclotomicExp(t0)
	t6 = t6.Mul(t4)
	t4 = cyclotomicExp(t6)
	t5 = t5.Conjugate()
	t4 = t4.Mul(t5).Mul(t2)
	t5 = t2.Conjugate()
	t1 = t1.Mul(t2)
	t1 = t1.FrobeniusMap().FrobeniusMap().FrobeniusMap()
	t6 = t6.Mul(t5)
	t6 = t6.FrobeniusMap()
	t3 = t3.Mul(t0)
	t3 = t3.FrobeniusMap().FrobeniusMap()
	t3 = t3.Mul(t1)
	t3 = t3.Mul(t6)
	t3 = t3.Mul(t4)

	result := Fp12ConditionalSelect(Fp12{}, t3, isNonzero)
	return Gt{Data: result}
}
