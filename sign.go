package bip340

import "fmt"

// Sign produces a BIP-340 signature over the 32-byte message digest m
// using sk, with auxiliary randomness aux mixed into nonce derivation per
// BIP-340's defense against weak RNGs. aux may be the zero array if no
// additional randomness is available, but SHOULD be freshly random.
//
// Sign runs the five steps laid out for deterministic signing: mask the
// secret with the aux tag, derive a nonce from the masked secret and the
// message, normalize the nonce to an even-Y commitment, form the
// Fiat-Shamir challenge, and combine nonce and challenge into s. Every
// step here operates on secret-dependent values (d, k) and so must not
// branch or index memory based on their bits beyond what the scalar and
// point types already guarantee; see DESIGN.md for the constant-time
// boundary this package draws around the math/big backend.
func Sign(sk *SigningKey, m [32]byte, aux [32]byte) (*Signature, error) {
	d := sk.secret
	publicKeyBytes := sk.verifyingKey.Bytes()

	dBytes := d.Bytes()
	auxHash := TaggedHash(tagAux, aux[:])
	var t [ScalarSize]byte
	for i := range t {
		t[i] = dBytes[i] ^ auxHash[i]
	}

	nonceHash := TaggedHash(tagNonce, t[:], publicKeyBytes[:], m[:])
	kPrime := ScalarFromBytesReduced(nonceHash[:])
	if kPrime.IsZero() {
		return nil, fmt.Errorf("%w: nonce derivation produced a zero nonce", ErrSigningUnavailable)
	}

	R := ScalarBaseMult(kPrime)
	k := newNonZeroScalar(kPrime.ConditionalNegate(!R.IsYEven()))
	// k cannot be zero: it is kPrime or its negation, and kPrime is nonzero.

	rx := R.XFieldElement()
	rxBytes := rx.Bytes()
	challengeHash := TaggedHash(tagChallenge, rxBytes[:], publicKeyBytes[:], m[:])
	e := ScalarFromBytesReduced(challengeHash[:])

	sScalar := k.Add(e.Multiply(&d.Scalar))
	if sScalar.IsZero() {
		return nil, fmt.Errorf("%w: signing produced a zero s value", ErrSigningUnavailable)
	}
	s := newNonZeroScalar(sScalar)

	sig := newSignature(rx, s)

	if err := Verify(sk.verifyingKey, m, sig); err != nil {
		return nil, fmt.Errorf("%w: self-verification of freshly produced signature failed: %v", ErrSigningUnavailable, err)
	}

	return sig, nil
}
