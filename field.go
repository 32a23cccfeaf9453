package bip340

import "math/big"

// FieldElementSize is the size in bytes of a canonically encoded field
// element.
const FieldElementSize = 32

// fieldPrime is p = 2^256 - 2^32 - 977, the secp256k1 field modulus.
var fieldPrime = func() *big.Int {
	p, ok := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	if !ok {
		panic("bip340: invalid field prime")
	}
	return p
}()

// sqrtExp is (p+1)/4, the exponent used to extract square roots mod p
// since p ≡ 3 (mod 4).
var sqrtExp = new(big.Int).Rsh(new(big.Int).Add(fieldPrime, big.NewInt(1)), 2)

// FieldElement is a residue modulo the secp256k1 field prime p. The zero
// value is the field element 0. A FieldElement is always kept reduced to
// its canonical representative in [0, p); normalize exists for parity
// with the backend interface described by the core, but is a no-op here.
type FieldElement struct {
	v *big.Int
}

// NewFieldElement returns the field element 0.
func NewFieldElement() *FieldElement {
	return &FieldElement{v: new(big.Int)}
}

// FieldElementFromBytes parses 32 big-endian bytes as a field element.
// It reports false if the encoded integer is >= p (a non-canonical
// encoding), matching Fp::from_be_bytes's contract of returning none on
// overflow.
func FieldElementFromBytes(b []byte) (*FieldElement, bool) {
	if len(b) != FieldElementSize {
		return nil, false
	}
	i := new(big.Int).SetBytes(b)
	if i.Cmp(fieldPrime) >= 0 {
		return nil, false
	}
	return &FieldElement{v: i}, true
}

// fieldElementFromBigReduced reduces an arbitrary big.Int modulo p. Used
// internally where overflow is not an error condition (e.g. the result
// of curve arithmetic).
func fieldElementFromBigReduced(i *big.Int) *FieldElement {
	return &FieldElement{v: new(big.Int).Mod(i, fieldPrime)}
}

// Normalize returns f's canonical representative in [0, p) as a new
// FieldElement, leaving f itself untouched. Every FieldElement produced
// by this package is already normalized; this method exists so call
// sites can make the normalization step explicit at the points the
// BIP-340 algorithm requires it, per the "normalization discipline"
// invariant (I4). It returns a new value rather than mutating the
// receiver in place so that a FieldElement held by a Signature or
// VerifyingKey remains safe to read from multiple goroutines at once.
func (f *FieldElement) Normalize() *FieldElement {
	return fieldElementFromBigReduced(f.v)
}

// Bytes returns the big-endian, canonical 32-byte encoding of f.
func (f *FieldElement) Bytes() [FieldElementSize]byte {
	var out [FieldElementSize]byte
	f.v.FillBytes(out[:])
	return out
}

// IsZero reports whether f is the zero element.
func (f *FieldElement) IsZero() bool {
	return f.v.Sign() == 0
}

// IsEven reports whether the normalized representative of f is even.
func (f *FieldElement) IsEven() bool {
	return f.v.Bit(0) == 0
}

// IsOdd reports whether the normalized representative of f is odd.
func (f *FieldElement) IsOdd() bool {
	return !f.IsEven()
}

// Equal reports whether f and other represent the same normalized field
// element.
func (f *FieldElement) Equal(other *FieldElement) bool {
	return f.v.Cmp(other.v) == 0
}

// Add returns f + other mod p.
func (f *FieldElement) Add(other *FieldElement) *FieldElement {
	return fieldElementFromBigReduced(new(big.Int).Add(f.v, other.v))
}

// Sub returns f - other mod p.
func (f *FieldElement) Sub(other *FieldElement) *FieldElement {
	return fieldElementFromBigReduced(new(big.Int).Sub(f.v, other.v))
}

// Mul returns f * other mod p.
func (f *FieldElement) Mul(other *FieldElement) *FieldElement {
	return fieldElementFromBigReduced(new(big.Int).Mul(f.v, other.v))
}

// Square returns f * f mod p.
func (f *FieldElement) Square() *FieldElement {
	return f.Mul(f)
}

// Negate returns -f mod p.
func (f *FieldElement) Negate() *FieldElement {
	return fieldElementFromBigReduced(new(big.Int).Neg(f.v))
}

// Invert returns f^-1 mod p. The zero element inverts to zero.
func (f *FieldElement) Invert() *FieldElement {
	if f.IsZero() {
		return NewFieldElement()
	}
	return fieldElementFromBigReduced(new(big.Int).ModInverse(f.v, fieldPrime))
}

// Sqrt returns a square root of f mod p and true if one exists. Since
// p ≡ 3 (mod 4), a root is computed directly as f^((p+1)/4); the caller
// is responsible for selecting the even-Y root when decompacting a point.
func (f *FieldElement) Sqrt() (*FieldElement, bool) {
	root := fieldElementFromBigReduced(new(big.Int).Exp(f.v, sqrtExp, fieldPrime))
	if !root.Square().Equal(f) {
		return nil, false
	}
	return root, true
}
