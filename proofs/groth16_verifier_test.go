package proofs

import (
	"encoding/json"
	"testing"

	"github.com/eth2030/bls12381-verifier/crypto"
)

// fixture builds a trivially-satisfying Groth16 instance: IC[0] is the
// identity, IC[1] is the G1 generator and the single public input is zero,
// so acc = IC[0] + [0]IC[1] is the identity; the proof's A/B equal
// alpha/beta exactly and C is the identity, so the pairing equation
// e(A,B) = e(alpha,beta)*e(acc,gamma)*e(C,delta) collapses to
// e(alpha,beta) = e(alpha,beta)*1*1 regardless of gamma/delta's value.
// Any nonzero input makes acc a nonzero multiple of the generator and breaks
// the equation. This exercises the verifier's
// control flow (length check, multi-term Miller loop, final exponentiation,
// comparison) without needing an actual circuit compiler.
func fixture() (*VerifyingKey, *Proof, []crypto.Scalar) {
	g1 := crypto.G1Generator()
	g2 := crypto.G2Generator()
	id1 := crypto.G1Identity()

	vk := &VerifyingKey{
		AlphaG1: g1,
		BetaG1:  g1,
		BetaG2:  g2,
		GammaG2: g2,
		DeltaG1: g1,
		DeltaG2: g2,
		IC:      []crypto.G1Affine{id1, g1},
	}
	proof := &Proof{A: g1, B: g2, C: id1}
	inputs := []crypto.Scalar{crypto.ScalarFromRawUnchecked([4]uint64{})}

	return vk, proof, inputs
}

func flipFpBit(f crypto.Fp) crypto.Fp {
	raw := f.Raw()
	raw[0] ^= 1
	return crypto.FpFromRawUnchecked(raw)
}

func flipScalarBit(s crypto.Scalar) crypto.Scalar {
	raw := s.Raw()
	raw[0] ^= 1
	return crypto.ScalarFromRawUnchecked(raw)
}

func TestPrepareVerifyingKeyNil(t *testing.T) {
	if _, err := PrepareVerifyingKey(nil); err != ErrGroth16NilVK {
		t.Fatalf("expected ErrGroth16NilVK, got %v", err)
	}
}

func TestPrepareVerifyingKeyNoIC(t *testing.T) {
	vk, _, _ := fixture()
	vk.IC = nil
	if _, err := PrepareVerifyingKey(vk); err != ErrGroth16NoIC {
		t.Fatalf("expected ErrGroth16NoIC, got %v", err)
	}
}

func TestVerifyProofNilArgs(t *testing.T) {
	vk, proof, inputs := fixture()
	pvk, err := PrepareVerifyingKey(vk)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyProof(nil, proof, inputs); err != ErrGroth16NilVK {
		t.Fatalf("expected ErrGroth16NilVK, got %v", err)
	}
	if _, err := VerifyProof(pvk, nil, inputs); err != ErrGroth16NilProof {
		t.Fatalf("expected ErrGroth16NilProof, got %v", err)
	}
}

func TestVerifyProofICLengthMismatch(t *testing.T) {
	vk, proof, inputs := fixture()
	pvk, err := PrepareVerifyingKey(vk)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := VerifyProof(pvk, proof, append(inputs, inputs[0]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected false on IC length mismatch")
	}
}

func TestVerifyProofValid(t *testing.T) {
	vk, proof, inputs := fixture()
	pvk, err := PrepareVerifyingKey(vk)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := VerifyProof(pvk, proof, inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected valid fixture to verify")
	}
}

// TestVerifyProofNegative checks that flipping a single limb bit of
// proof.A, proof.C, inputs[0], or vk.alpha_g1 flips the verdict to false.
// The fixture's C is the identity, so the proof.C case also clears its
// infinity flag for the flipped coordinate to take effect.
func TestVerifyProofNegative(t *testing.T) {
	cases := map[string]func(vk *VerifyingKey, proof *Proof, inputs []crypto.Scalar){
		"proof.A": func(vk *VerifyingKey, proof *Proof, inputs []crypto.Scalar) {
			proof.A.X = flipFpBit(proof.A.X)
		},
		"proof.C": func(vk *VerifyingKey, proof *Proof, inputs []crypto.Scalar) {
			proof.C.X = flipFpBit(proof.C.X)
			proof.C.Infinity = crypto.Choice(0)
		},
		"inputs[0]": func(vk *VerifyingKey, proof *Proof, inputs []crypto.Scalar) {
			inputs[0] = flipScalarBit(inputs[0])
		},
		"vk.alpha_g1": func(vk *VerifyingKey, proof *Proof, inputs []crypto.Scalar) {
			vk.AlphaG1.X = flipFpBit(vk.AlphaG1.X)
		},
	}

	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			vk, proof, inputs := fixture()
			corrupt(vk, proof, inputs)

			pvk, err := PrepareVerifyingKey(vk)
			if err != nil {
				t.Fatal(err)
			}
			ok, err := VerifyProof(pvk, proof, inputs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Fatalf("corrupting %s should have broken verification", name)
			}
		})
	}
}

func TestVerifyProofJSONRoundTrip(t *testing.T) {
	vk, proof, inputs := fixture()

	vkJSON, err := json.Marshal(vk)
	if err != nil {
		t.Fatal(err)
	}
	proofJSON, err := json.Marshal(proof)
	if err != nil {
		t.Fatal(err)
	}
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyProofJSON(vkJSON, proofJSON, inputsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected valid fixture to verify over JSON")
	}
}

func TestVerifyProofJSONParseError(t *testing.T) {
	_, proof, inputs := fixture()
	proofJSON, _ := json.Marshal(proof)
	inputsJSON, _ := json.Marshal(inputs)

	if _, err := VerifyProofJSON([]byte("not json"), proofJSON, inputsJSON); err == nil {
		t.Fatal("expected parse error for malformed verifying key JSON")
	}
}

func TestProofFingerprintDeterministic(t *testing.T) {
	_, proof, _ := fixture()
	fp1 := ProofFingerprint(proof)
	fp2 := ProofFingerprint(proof)
	if fp1 != fp2 {
		t.Fatal("fingerprint should be deterministic")
	}
}
