package bip340

import (
	"crypto/rand"
	"fmt"
	"io"
)

// VerifyingKey is a BIP-340 X-only public key: the x-coordinate of a
// secp256k1 point whose y-coordinate is taken to be even by convention.
type VerifyingKey struct {
	point *Point
}

// VerifyingKeyFromBytes parses a 32-byte X-only public key, decompacting
// it to the even-Y point with that x-coordinate.
func VerifyingKeyFromBytes(b []byte) (*VerifyingKey, error) {
	if len(b) != FieldElementSize {
		return nil, fmt.Errorf("%w: verifying key must be %d bytes", ErrMalformedInput, FieldElementSize)
	}
	x, ok := FieldElementFromBytes(b)
	if !ok {
		return nil, fmt.Errorf("%w: x-coordinate is not a valid field element", ErrMalformedInput)
	}
	p, ok := Decompact(x)
	if !ok {
		return nil, fmt.Errorf("%w: x-coordinate is not on the curve", ErrMalformedInput)
	}
	return &VerifyingKey{point: p}, nil
}

// Bytes returns the 32-byte X-only encoding of vk.
func (vk *VerifyingKey) Bytes() [FieldElementSize]byte {
	return vk.point.XFieldElement().Bytes()
}

// Point returns the even-Y affine point this key represents.
func (vk *VerifyingKey) Point() *Point {
	return vk.point
}

// Equal reports whether vk and other encode the same public key.
func (vk *VerifyingKey) Equal(other *VerifyingKey) bool {
	return vk.point.Equal(other.point)
}

// SigningKey is a BIP-340 secret key. Unlike the raw secret scalar, the
// stored scalar has already been negated if necessary so that its public
// point has an even y-coordinate; this normalization happens once, here,
// at construction time, rather than being redone on every call to Sign.
type SigningKey struct {
	secret       *NonZeroScalar
	verifyingKey *VerifyingKey
}

// SigningKeyFromBytes parses a 32-byte big-endian secret scalar,
// rejecting zero and out-of-range values, and normalizes it to have an
// even-Y public point.
func SigningKeyFromBytes(b []byte) (*SigningKey, error) {
	d, err := NonZeroScalarFromCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return newSigningKeyFromScalar(d), nil
}

// GenerateSigningKey draws a uniformly random secret key using entropy
// from rnd. Passing nil uses crypto/rand.Reader.
func GenerateSigningKey(rnd io.Reader) (*SigningKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var buf [ScalarSize]byte
	for {
		if _, err := io.ReadFull(rnd, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
		}
		d, err := NonZeroScalarFromCanonicalBytes(buf[:])
		if err != nil {
			continue
		}
		return newSigningKeyFromScalar(d), nil
	}
}

func newSigningKeyFromScalar(d *NonZeroScalar) *SigningKey {
	p := ScalarBaseMult(&d.Scalar)
	if p.IsYEven() {
		return &SigningKey{secret: d, verifyingKey: &VerifyingKey{point: p}}
	}

	negated := newNonZeroScalar(d.Negate())
	return &SigningKey{secret: negated, verifyingKey: &VerifyingKey{point: p.Negate()}}
}

// Bytes returns the big-endian, canonical 32-byte encoding of the
// (already even-Y-normalized) secret scalar.
func (sk *SigningKey) Bytes() [ScalarSize]byte {
	return sk.secret.Bytes()
}

// VerifyingKey returns the public key corresponding to sk.
func (sk *SigningKey) VerifyingKey() *VerifyingKey {
	return sk.verifyingKey
}
