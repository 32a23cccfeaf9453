package bip340

import (
	"bytes"
	"fmt"
)

// SignatureSize is the size in bytes of an encoded BIP-340 signature.
const SignatureSize = 64

// Signature is a parsed BIP-340 signature: a field element r (the
// x-coordinate of the nonce commitment) and a nonzero scalar s.
type Signature struct {
	r   *FieldElement
	s   *NonZeroScalar
	raw [SignatureSize]byte
}

// SignatureFromBytes parses a 64-byte signature, rejecting an r that is
// not a canonical field element or an s that is not a canonical,
// nonzero scalar.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, fmt.Errorf("%w: signature must be %d bytes", ErrMalformedInput, SignatureSize)
	}
	r, ok := FieldElementFromBytes(b[:FieldElementSize])
	if !ok {
		return nil, fmt.Errorf("%w: r is not a valid field element", ErrMalformedInput)
	}
	if r.IsZero() {
		return nil, fmt.Errorf("%w: r must not be zero", ErrMalformedInput)
	}
	s, err := NonZeroScalarFromCanonicalBytes(b[FieldElementSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: s is not a valid nonzero scalar: %v", ErrMalformedInput, err)
	}

	sig := &Signature{r: r, s: s}
	copy(sig.raw[:], b)
	return sig, nil
}

func newSignature(r *FieldElement, s *NonZeroScalar) *Signature {
	sig := &Signature{r: r, s: s}
	rb := r.Bytes()
	sb := s.Bytes()
	copy(sig.raw[:FieldElementSize], rb[:])
	copy(sig.raw[FieldElementSize:], sb[:])
	return sig
}

// Bytes returns the 64-byte wire encoding of sig.
func (sig *Signature) Bytes() [SignatureSize]byte {
	return sig.raw
}

// Equal reports whether sig and other have the same 64-byte encoding.
func (sig *Signature) Equal(other *Signature) bool {
	return bytes.Equal(sig.raw[:], other.raw[:])
}

// Compare orders sig and other by their 64-byte big-endian encoding,
// returning -1, 0, or 1. It allows Signature values to be sorted or used
// as ordered map keys without exposing the raw bytes at every call site.
func (sig *Signature) Compare(other *Signature) int {
	return bytes.Compare(sig.raw[:], other.raw[:])
}
