package crypto

import "testing"

// --- Fp field laws ---

func fpRand(seed uint64) Fp {
	// Deterministic pseudo-values from small seeds (seed*R^2 + (seed+1));
	// not uniformly random, but enough to exercise the field laws across a
	// spread of inputs without importing math/rand.
	a := fpFromU64(seed)
	return a.Mul(fpR2).Add(fpFromU64(seed + 1))
}

func TestFpFieldLaws(t *testing.T) {
	a, b, c := fpRand(3), fpRand(11), fpRand(29)

	if !a.Add(b).CtEq(b.Add(a)).IsTrue() {
		t.Fatal("Fp addition not commutative")
	}
	if !a.Mul(b).CtEq(b.Mul(a)).IsTrue() {
		t.Fatal("Fp multiplication not commutative")
	}
	if !a.Add(b).Add(c).CtEq(a.Add(b.Add(c))).IsTrue() {
		t.Fatal("Fp addition not associative")
	}
	if !a.Mul(b).Mul(c).CtEq(a.Mul(b.Mul(c))).IsTrue() {
		t.Fatal("Fp multiplication not associative")
	}
	if !a.Mul(b.Add(c)).CtEq(a.Mul(b).Add(a.Mul(c))).IsTrue() {
		t.Fatal("Fp distributivity failed")
	}
	if !a.Mul(FpOne()).CtEq(a).IsTrue() {
		t.Fatal("a*1 != a")
	}
	if !a.Add(a.Neg()).CtEq(FpZero()).IsTrue() {
		t.Fatal("a+(-a) != 0")
	}
	inv, ok := a.Invert()
	if !ok.IsTrue() {
		t.Fatal("invert(a) should report nonzero")
	}
	if !inv.Mul(a).CtEq(FpOne()).IsTrue() {
		t.Fatal("invert(a)*a != 1")
	}
	if !a.Square().CtEq(a.Mul(a)).IsTrue() {
		t.Fatal("square(a) != a*a")
	}

	if _, ok := FpZero().Invert(); ok.IsTrue() {
		t.Fatal("invert(0) should report zero")
	}
}

// --- Fp2 field laws + Frobenius ---

func fp2Rand(seed uint64) Fp2 {
	return Fp2{C0: fpRand(seed), C1: fpRand(seed + 100)}
}

func TestFp2FieldLaws(t *testing.T) {
	a, b, c := fp2Rand(3), fp2Rand(11), fp2Rand(29)

	if !a.Add(b).CtEq(b.Add(a)).IsTrue() {
		t.Fatal("Fp2 addition not commutative")
	}
	if !a.Mul(b).CtEq(b.Mul(a)).IsTrue() {
		t.Fatal("Fp2 multiplication not commutative")
	}
	if !a.Add(b).Add(c).CtEq(a.Add(b.Add(c))).IsTrue() {
		t.Fatal("Fp2 addition not associative")
	}
	if !a.Mul(b).Mul(c).CtEq(a.Mul(b.Mul(c))).IsTrue() {
		t.Fatal("Fp2 multiplication not associative")
	}
	if !a.Mul(b.Add(c)).CtEq(a.Mul(b).Add(a.Mul(c))).IsTrue() {
		t.Fatal("Fp2 distributivity failed")
	}
	if !a.Mul(Fp2One()).CtEq(a).IsTrue() {
		t.Fatal("a*1 != a")
	}
	if !a.Add(a.Neg()).CtEq(Fp2Zero()).IsTrue() {
		t.Fatal("a+(-a) != 0")
	}
	inv, ok := a.Invert()
	if !ok.IsTrue() || !inv.Mul(a).CtEq(Fp2One()).IsTrue() {
		t.Fatal("invert(a)*a != 1")
	}
	if !a.Square().CtEq(a.Mul(a)).IsTrue() {
		t.Fatal("square(a) != a*a")
	}
	// Fp2's Frobenius is conjugation, so applying it twice is the identity.
	if !a.FrobeniusMap().FrobeniusMap().CtEq(a).IsTrue() {
		t.Fatal("Fp2 frobenius^2 != identity")
	}
}

func TestFp6FrobeniusOrder(t *testing.T) {
	a := Fp6{C0: fp2Rand(3), C1: fp2Rand(5), C2: fp2Rand(7)}
	f := a
	for i := 0; i < 6; i++ {
		f = f.FrobeniusMap()
	}
	if !f.CtEq(a).IsTrue() {
		t.Fatal("Fp6 frobenius^6 != identity")
	}
}

func TestFp6FieldLaws(t *testing.T) {
	a := Fp6{C0: fp2Rand(3), C1: fp2Rand(5), C2: fp2Rand(7)}
	b := Fp6{C0: fp2Rand(11), C1: fp2Rand(13), C2: fp2Rand(17)}
	c := Fp6{C0: fp2Rand(19), C1: fp2Rand(23), C2: fp2Rand(29)}

	if !a.Add(b).CtEq(b.Add(a)).IsTrue() {
		t.Fatal("Fp6 addition not commutative")
	}
	if !a.Mul(b).CtEq(b.Mul(a)).IsTrue() {
		t.Fatal("Fp6 multiplication not commutative")
	}
	if !a.Mul(b).Mul(c).CtEq(a.Mul(b.Mul(c))).IsTrue() {
		t.Fatal("Fp6 multiplication not associative")
	}
	if !a.Mul(b.Add(c)).CtEq(a.Mul(b).Add(a.Mul(c))).IsTrue() {
		t.Fatal("Fp6 distributivity failed")
	}
	if !a.Mul(Fp6One()).CtEq(a).IsTrue() {
		t.Fatal("a*1 != a")
	}
	inv, ok := a.Invert()
	if !ok.IsTrue() || !inv.Mul(a).CtEq(Fp6One()).IsTrue() {
		t.Fatal("invert(a)*a != 1")
	}
	if !a.Square().CtEq(a.Mul(a)).IsTrue() {
		t.Fatal("square(a) != a*a")
	}
}

func TestFp12FrobeniusOrder(t *testing.T) {
	a := Fp12{
		C0: Fp6{C0: fp2Rand(3), C1: fp2Rand(5), C2: fp2Rand(7)},
		C1: Fp6{C0: fp2Rand(11), C1: fp2Rand(13), C2: fp2Rand(17)},
	}
	f := a
	for i := 0; i < 12; i++ {
		f = f.FrobeniusMap()
	}
	if !f.CtEq(a).IsTrue() {
		t.Fatal("Fp12 frobenius^12 != identity")
	}
}

func TestFp12FieldLaws(t *testing.T) {
	a := Fp12{C0: Fp6{C0: fp2Rand(3), C1: fp2Rand(5), C2: fp2Rand(7)}, C1: Fp6{C0: fp2Rand(11), C1: fp2Rand(13), C2: fp2Rand(17)}}
	b := Fp12{C0: Fp6{C0: fp2Rand(19), C1: fp2Rand(23), C2: fp2Rand(29)}, C1: Fp6{C0: fp2Rand(31), C1: fp2Rand(37), C2: fp2Rand(41)}}
	c := Fp12{C0: Fp6{C0: fp2Rand(43), C1: fp2Rand(47), C2: fp2Rand(53)}, C1: Fp6{C0: fp2Rand(59), C1: fp2Rand(61), C2: fp2Rand(67)}}

	if !a.Add(b).CtEq(b.Add(a)).IsTrue() {
		t.Fatal("Fp12 addition not commutative")
	}
	if !a.Mul(b).CtEq(b.Mul(a)).IsTrue() {
		t.Fatal("Fp12 multiplication not commutative")
	}
	if !a.Mul(b).Mul(c).CtEq(a.Mul(b.Mul(c))).IsTrue() {
		t.Fatal("Fp12 multiplication not associative")
	}
	if !a.Mul(b.Add(c)).CtEq(a.Mul(b).Add(a.Mul(c))).IsTrue() {
		t.Fatal("Fp12 distributivity failed")
	}
	if !a.Mul(Fp12One()).CtEq(a).IsTrue() {
		t.Fatal("a*1 != a")
	}
	inv, ok := a.Invert()
	if !ok.IsTrue() || !inv.Mul(a).CtEq(Fp12One()).IsTrue() {
		t.Fatal("invert(a)*a != 1")
	}
	if !a.Square().CtEq(a.Mul(a)).IsTrue() {
		t.Fatal("square(a) != a*a")
	}
}

func TestFpOneRoundTrip(t *testing.T) {
	one := FpOne()
	if !one.Mul(one).CtEq(one).IsTrue() {
		t.Fatal("Fp::one() * Fp::one() != Fp::one()")
	}
	if !FpFromRawUnchecked(fpR).CtEq(one).IsTrue() {
		t.Fatal("Fp::one() should equal the raw Montgomery encoding of 1 (R mod p)")
	}
}

func TestScalarExport(t *testing.T) {
	one := ScalarOne()
	bytes := one.ToBytesLE()
	if bytes[0] != 1 {
		t.Fatalf("Scalar(1).to_bytes()[0] = %d, want 1", bytes[0])
	}
	for i := 1; i < 32; i++ {
		if bytes[i] != 0 {
			t.Fatalf("Scalar(1).to_bytes()[%d] = %d, want 0", i, bytes[i])
		}
	}

	zero := Scalar{}
	zbytes := zero.ToBytesLE()
	for i, b := range zbytes {
		if b != 0 {
			t.Fatalf("Scalar(0).to_bytes()[%d] = %d, want 0", i, b)
		}
	}
}
