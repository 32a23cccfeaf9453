package bip340

import "fmt"

// Verify checks sig against the message digest m and public key vk,
// returning nil if the signature is valid and ErrVerificationFailed
// otherwise.
//
// Unlike Sign, every input here is public, so Verify is free to use
// variable-time arithmetic; in particular Lincomb does not try to hide
// which bits of e and s are set.
func Verify(vk *VerifyingKey, m [32]byte, sig *Signature) error {
	publicKeyBytes := vk.Bytes()
	rBytes := sig.r.Bytes()

	challengeHash := TaggedHash(tagChallenge, rBytes[:], publicKeyBytes[:], m[:])
	e := ScalarFromBytesReduced(challengeHash[:])

	R := Lincomb(&sig.s.Scalar, e.Negate(), vk.point)
	if R.IsInfinity() {
		return fmt.Errorf("%w: candidate nonce point is the point at infinity", ErrVerificationFailed)
	}
	if !R.IsYEven() {
		return fmt.Errorf("%w: candidate nonce point has odd y", ErrVerificationFailed)
	}
	if !R.XFieldElement().Equal(sig.r) {
		return fmt.Errorf("%w: x-coordinate mismatch", ErrVerificationFailed)
	}
	return nil
}

// VerifyBytes is a convenience wrapper that parses pubKey and signature
// from their wire encodings before delegating to Verify. An encoding that
// fails to parse yields ErrMalformedInput.
func VerifyBytes(pubKey []byte, m [32]byte, signature []byte) error {
	vk, err := VerifyingKeyFromBytes(pubKey)
	if err != nil {
		return err
	}
	sig, err := SignatureFromBytes(signature)
	if err != nil {
		return err
	}
	return Verify(vk, m, sig)
}
