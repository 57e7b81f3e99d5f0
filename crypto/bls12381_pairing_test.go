package crypto

import "testing"

func mulG1(n uint64) G1Affine {
	var b [32]byte
	b[0] = byte(n)
	return G1Generator().MulBytesLE(b).ToAffine()
}

func mulG2(n uint64, g G2Affine) G2Affine {
	acc := G2ProjectiveIdentity()
	for i := uint64(0); i < n; i++ {
		acc = acc.AddMixed(g)
	}
	return acc.ToAffine()
}

func TestPairingNonDegenerate(t *testing.T) {
	e := Pairing(G1Generator(), G2Generator())
	if e.CtEq(GtIdentity()).IsTrue() {
		t.Fatal("e(P,Q) should not be 1 for generators")
	}

	eO1 := Pairing(G1Identity(), G2Generator())
	if !eO1.CtEq(GtIdentity()).IsTrue() {
		t.Fatal("e(O,Q) should be 1")
	}

	eO2 := Pairing(G1Generator(), G2Identity())
	if !eO2.CtEq(GtIdentity()).IsTrue() {
		t.Fatal("e(P,O) should be 1")
	}
}

func TestPairingBilinear(t *testing.T) {
	a, b := uint64(3), uint64(5)

	lhs := Pairing(mulG1(a), mulG2(b, G2Generator()))

	rhs := Pairing(G1Generator(), G2Generator())
	pow := GtIdentity()
	for i := uint64(0); i < a*b; i++ {
		pow = Gt{Data: pow.Data.Mul(rhs.Data)}
	}

	if !lhs.CtEq(pow).IsTrue() {
		t.Fatal("e([a]P,[b]Q) != e(P,Q)^(a*b)")
	}
}

func TestBilinearityDoubling(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()

	base := Pairing(g1, g2)
	squared := Gt{Data: base.Data.Mul(base.Data)}

	g1dbl := g1.ToCurve().Double().ToAffine()
	lhs := Pairing(g1dbl, g2)

	g2dbl := g2.ToCurve().Double().ToAffine()
	rhs := Pairing(g1, g2dbl)

	if !squared.CtEq(lhs).IsTrue() {
		t.Fatal("e(P,Q)^2 != e(2P,Q)")
	}
	if !squared.CtEq(rhs).IsTrue() {
		t.Fatal("e(P,Q)^2 != e(P,2Q)")
	}
	if !lhs.CtEq(rhs).IsTrue() {
		t.Fatal("e(2P,Q) != e(P,2Q)")
	}
}

func TestMultiMillerLoopMatchesSinglePairings(t *testing.T) {
	g1 := G1Generator()
	g2Prep := G2PreparedFrom(G2Generator())

	g1b := mulG1(2)
	g2bPrep := G2PreparedFrom(mulG2(3, G2Generator()))

	combined := MultiMillerLoop([]PairingTerm{
		{P: g1, Prep: g2Prep},
		{P: g1b, Prep: g2bPrep},
	})

	separate := MillerLoop(g1, g2Prep).Mul(MillerLoop(g1b, g2bPrep))

	if !FinalExponentiation(combined).CtEq(FinalExponentiation(separate)).IsTrue() {
		t.Fatal("MultiMillerLoop should equal the product of independent MillerLoop calls")
	}
}
