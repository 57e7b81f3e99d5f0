// Groth16 verification for BLS12-381 circuits. Implements the pairing
// check e(A,B) = e(Alpha,Beta) * e(acc,Gamma) * e(C,Delta), rearranged as
// e(A,B) * e(acc,-Gamma) * e(C,-Delta) = e(Alpha,Beta) so the whole left
// side is the product of three Miller loops followed by one final
// exponentiation.

package proofs

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/eth2030/bls12381-verifier/crypto"
	"github.com/eth2030/bls12381-verifier/log"
)

var (
	ErrGroth16NilProof = errors.New("groth16: nil proof")
	ErrGroth16NilVK    = errors.New("groth16: nil verifying key")
	ErrGroth16NoIC     = errors.New("groth16: no IC points")
)

// Proof is a Groth16 proof: A, C in G1, B in G2.
type Proof struct {
	A crypto.G1Affine `json:"a"`
	B crypto.G2Affine `json:"b"`
	C crypto.G1Affine `json:"c"`
}

// VerifyingKey is the Groth16 verifying key for a fixed circuit.
type VerifyingKey struct {
	AlphaG1 crypto.G1Affine   `json:"alpha_g1"`
	BetaG1  crypto.G1Affine   `json:"beta_g1"`
	BetaG2  crypto.G2Affine   `json:"beta_g2"`
	GammaG2 crypto.G2Affine   `json:"gamma_g2"`
	DeltaG1 crypto.G1Affine   `json:"delta_g1"`
	DeltaG2 crypto.G2Affine   `json:"delta_g2"`
	IC      []crypto.G1Affine `json:"ic"`
}

// PreparedVerifyingKey caches the parts of VerifyingKey that don't depend on
// the proof being checked: the alpha/beta pairing and the negated,
// Miller-loop-prepared gamma/delta points.
type PreparedVerifyingKey struct {
	AlphaG1BetaG2 crypto.Gt         `json:"alpha_g1_beta_g2"`
	NegGammaG2    crypto.G2Prepared `json:"neg_gamma_g2"`
	NegDeltaG2    crypto.G2Prepared `json:"neg_delta_g2"`
	IC            []crypto.G1Affine `json:"ic"`
}

// PrepareVerifyingKey computes the one-time pairing and G2 preprocessing
// that VerifyProof otherwise would have to redo on every call.
func PrepareVerifyingKey(vk *VerifyingKey) (*PreparedVerifyingKey, error) {
	if vk == nil {
		return nil, ErrGroth16NilVK
	}
	if len(vk.IC) == 0 {
		return nil, ErrGroth16NoIC
	}

	return &PreparedVerifyingKey{
		AlphaG1BetaG2: crypto.Pairing(vk.AlphaG1, vk.BetaG2),
		NegGammaG2:    crypto.G2PreparedFrom(vk.GammaG2.Neg()),
		NegDeltaG2:    crypto.G2PreparedFrom(vk.DeltaG2.Neg()),
		IC:            vk.IC,
	}, nil
}

// VerifyProof checks a Groth16 proof against a prepared verifying key and a
// list of public inputs. It distinguishes exactly two failure modes: a
// structural IC-length mismatch (returns false, nil) and the arithmetic
// pairing check itself (returns the comparison result, nil). Malformed
// inputs (nil pvk/proof) are the only error returns.
func VerifyProof(pvk *PreparedVerifyingKey, proof *Proof, inputs []crypto.Scalar) (bool, error) {
	if pvk == nil {
		return false, ErrGroth16NilVK
	}
	if proof == nil {
		return false, ErrGroth16NilProof
	}
	if len(inputs)+1 != len(pvk.IC) {
		return false, nil
	}

	acc := pvk.IC[0].ToCurve()
	for i, in := range inputs {
		acc = acc.Add(pvk.IC[i+1].MulBytesLE(in.ToBytesLE()))
	}
	accAffine := acc.ToAffine()

	bPrepared := crypto.G2PreparedFrom(proof.B)

	// The three Miller-loop terms only read their own inputs, so run them
	// concurrently and multiply the independent outputs -- Fp12
	// multiplication commutes with the per-term squaring schedule, so this
	// is exactly the multi-term Miller loop's result.
	var fa, fg, fd crypto.Fp12
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); fa = crypto.MillerLoop(proof.A, bPrepared) }()
	go func() { defer wg.Done(); fg = crypto.MillerLoop(accAffine, pvk.NegGammaG2) }()
	go func() { defer wg.Done(); fd = crypto.MillerLoop(proof.C, pvk.NegDeltaG2) }()
	wg.Wait()

	ml := fa.Mul(fg).Mul(fd)
	result := crypto.FinalExponentiation(ml)

	return result.CtEq(pvk.AlphaG1BetaG2).IsTrue(), nil
}

// VerifyProofJSON parses a verifying key, a proof, and a list of public
// inputs, each as a UTF-8 JSON blob, and reports whether the proof is
// valid. A parse failure, or a verifying key with no IC points
// (ErrGroth16NoIC), is an error return; otherwise the result is a plain
// bool.
func VerifyProofJSON(vkJSON, proofJSON, inputsJSON []byte) (bool, error) {
	logger := log.Default().Module("groth16")

	var vk VerifyingKey
	if err := json.Unmarshal(vkJSON, &vk); err != nil {
		logger.Debug("failed to parse verifying key", "error", err)
		return false, fmt.Errorf("groth16: parse verifying key: %w", err)
	}
	var proof Proof
	if err := json.Unmarshal(proofJSON, &proof); err != nil {
		logger.Debug("failed to parse proof", "error", err)
		return false, fmt.Errorf("groth16: parse proof: %w", err)
	}
	var inputs []crypto.Scalar
	if err := json.Unmarshal(inputsJSON, &inputs); err != nil {
		logger.Debug("failed to parse public inputs", "error", err)
		return false, fmt.Errorf("groth16: parse public inputs: %w", err)
	}

	pvk, err := PrepareVerifyingKey(&vk)
	if err != nil {
		return false, fmt.Errorf("groth16: prepare verifying key: %w", err)
	}

	ok, err := VerifyProof(pvk, &proof, inputs)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debug("groth16 verification failed", "fingerprint", fmt.Sprintf("%x", ProofFingerprint(&proof)))
	}
	return ok, nil
}

// ProofFingerprint returns a sha256 digest of the proof's JSON encoding, for
// logging and dedup -- not a canonical or collision-resistant-against-
// re-encoding identity, just a cheap debug handle.
func ProofFingerprint(proof *Proof) [32]byte {
	data, _ := json.Marshal(proof)
	return sha256.Sum256(data)
}
