package bip340

import (
	"errors"
	"math/big"
)

// ScalarSize is the size in bytes of a canonically encoded scalar.
const ScalarSize = 32

// groupOrder is n, the order of the secp256k1 base point G.
var groupOrder = func() *big.Int {
	n, ok := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	if !ok {
		panic("bip340: invalid group order")
	}
	return n
}()

// Scalar is a residue modulo the group order n. The zero value is the
// scalar 0.
type Scalar struct {
	v *big.Int
}

// NewScalar returns the scalar 0.
func NewScalar() *Scalar {
	return &Scalar{v: new(big.Int)}
}

func scalarFromBigReduced(i *big.Int) *Scalar {
	return &Scalar{v: new(big.Int).Mod(i, groupOrder)}
}

// ScalarFromBytesReduced parses 32 big-endian bytes as an integer and
// reduces it modulo n. This always succeeds, matching
// Fn::from_be_bytes_reduced.
func ScalarFromBytesReduced(b []byte) *Scalar {
	return scalarFromBigReduced(new(big.Int).SetBytes(b))
}

// ScalarFromCanonicalBytes parses 32 big-endian bytes as a scalar,
// failing if the encoded integer is >= n.
func ScalarFromCanonicalBytes(b []byte) (*Scalar, error) {
	if len(b) != ScalarSize {
		return nil, errors.New("bip340: scalar must be 32 bytes")
	}
	i := new(big.Int).SetBytes(b)
	if i.Cmp(groupOrder) >= 0 {
		return nil, errors.New("bip340: scalar value out of range")
	}
	return &Scalar{v: i}, nil
}

// Bytes returns the big-endian, canonical 32-byte encoding of s.
func (s *Scalar) Bytes() [ScalarSize]byte {
	var out [ScalarSize]byte
	s.v.FillBytes(out[:])
	return out
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s and other are the same residue mod n.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.v.Cmp(other.v) == 0
}

// Add returns s + other mod n.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return scalarFromBigReduced(new(big.Int).Add(s.v, other.v))
}

// Multiply returns s * other mod n.
func (s *Scalar) Multiply(other *Scalar) *Scalar {
	return scalarFromBigReduced(new(big.Int).Mul(s.v, other.v))
}

// Negate returns -s mod n.
func (s *Scalar) Negate() *Scalar {
	return scalarFromBigReduced(new(big.Int).Neg(s.v))
}

// ConditionalNegate returns -s mod n if negate is true, or s unchanged
// otherwise. The backend interface describes this as a constant-time
// conditional select; see DESIGN.md for the limits of constant-time
// behavior built on math/big.
func (s *Scalar) ConditionalNegate(negate bool) *Scalar {
	if negate {
		return s.Negate()
	}
	return scalarFromBigReduced(new(big.Int).Set(s.v))
}

// NonZeroScalar is a Scalar restricted to the nonzero residues mod n. It
// is the only scalar type permitted for secret keys and for the s
// component of a Signature.
type NonZeroScalar struct {
	Scalar
}

// NonZeroScalarFromCanonicalBytes parses 32 big-endian bytes as a
// NonZeroScalar, failing if the value is zero or >= n.
func NonZeroScalarFromCanonicalBytes(b []byte) (*NonZeroScalar, error) {
	s, err := ScalarFromCanonicalBytes(b)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, errors.New("bip340: scalar must not be zero")
	}
	return &NonZeroScalar{Scalar: *s}, nil
}

// newNonZeroScalar wraps an already-validated nonzero Scalar. The caller
// must have verified that s is nonzero.
func newNonZeroScalar(s *Scalar) *NonZeroScalar {
	return &NonZeroScalar{Scalar: *s}
}
