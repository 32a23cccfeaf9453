package bip340

import "math/big"

// Point is an element of the secp256k1 group, represented in affine
// (x, y) coordinates. The zero value is not a valid Point; use
// NewInfinityPoint or one of the constructors below.
//
// Curve arithmetic here favors clarity over constant time: every
// operation is expressed directly over math/big with explicit modular
// reduction rather than a fixed-limb representation, because the
// correctness of this backend (not its timing profile) is what the core
// BIP-340 logic depends on. See DESIGN.md for the tradeoffs behind this
// choice.
type Point struct {
	x, y       *big.Int
	isInfinity bool
}

// NewInfinityPoint returns the point at infinity, the group's identity
// element.
func NewInfinityPoint() *Point {
	return &Point{isInfinity: true}
}

// newAffinePoint constructs a finite point without validating that it
// lies on the curve; used only by code paths that already proved that
// invariant (e.g. decompaction, scalar multiplication).
func newAffinePoint(x, y *big.Int) *Point {
	return &Point{x: new(big.Int).Mod(x, fieldPrime), y: new(big.Int).Mod(y, fieldPrime)}
}

// Generator returns the secp256k1 base point G.
func Generator() *Point {
	return newAffinePoint(new(big.Int).Set(generatorX), new(big.Int).Set(generatorY))
}

var (
	generatorX = mustBig("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	generatorY = mustBig("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	curveB     = big.NewInt(7)
)

func mustBig(hexDigits string) *big.Int {
	v, ok := new(big.Int).SetString(hexDigits, 16)
	if !ok {
		panic("bip340: invalid curve constant")
	}
	return v
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.isInfinity
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + 7 mod p. The point
// at infinity is conventionally considered on-curve by this check, since
// callers that care about infinity check IsInfinity separately.
func (p *Point) IsOnCurve() bool {
	if p.isInfinity {
		return true
	}
	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, fieldPrime)

	rhs := new(big.Int).Mul(p.x, p.x)
	rhs.Mul(rhs, p.x)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, fieldPrime)

	return lhs.Cmp(rhs) == 0
}

// XFieldElement returns x(p) as a FieldElement. It panics if p is the
// point at infinity; callers must check IsInfinity first.
func (p *Point) XFieldElement() *FieldElement {
	if p.isInfinity {
		panic("bip340: x-coordinate of the point at infinity is undefined")
	}
	return fieldElementFromBigReduced(p.x)
}

// IsYEven reports whether y(p), normalized, is even. It panics if p is
// the point at infinity.
func (p *Point) IsYEven() bool {
	if p.isInfinity {
		panic("bip340: y-parity of the point at infinity is undefined")
	}
	return new(big.Int).Mod(p.y, fieldPrime).Bit(0) == 0
}

// Negate returns -p (the reflection of p across the x-axis).
func (p *Point) Negate() *Point {
	if p.isInfinity {
		return NewInfinityPoint()
	}
	return newAffinePoint(new(big.Int).Set(p.x), new(big.Int).Neg(p.y))
}

// Equal reports whether p and other are the same group element.
func (p *Point) Equal(other *Point) bool {
	if p.isInfinity || other.isInfinity {
		return p.isInfinity == other.isInfinity
	}
	return p.x.Cmp(other.x) == 0 && new(big.Int).Mod(p.y, fieldPrime).Cmp(new(big.Int).Mod(other.y, fieldPrime)) == 0
}

// Add returns p + other using the standard affine elliptic curve group
// law. This mirrors the case analysis in ModChain-secp256k1/curve.go's
// Jacobian addZ1AndZ2EqualsOne (point doubling when the inputs coincide,
// the point at infinity when they are mutual inverses) but works
// directly in affine coordinates over math/big.
func (p *Point) Add(other *Point) *Point {
	if p.isInfinity {
		return other.clone()
	}
	if other.isInfinity {
		return p.clone()
	}

	if p.x.Cmp(other.x) == 0 {
		sumY := new(big.Int).Mod(new(big.Int).Add(p.y, other.y), fieldPrime)
		if sumY.Sign() == 0 {
			return NewInfinityPoint()
		}
		return p.Double()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(other.y, p.y)
	den := new(big.Int).Sub(other.x, p.x)
	den.ModInverse(den, fieldPrime)
	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, fieldPrime)

	// x3 = lambda^2 - x1 - x2
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, other.x)
	x3.Mod(x3, fieldPrime)

	// y3 = lambda*(x1 - x3) - y1
	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, fieldPrime)

	return newAffinePoint(x3, y3)
}

// Double returns p + p.
func (p *Point) Double() *Point {
	if p.isInfinity || p.y.Sign() == 0 {
		return NewInfinityPoint()
	}

	// lambda = 3*x1^2 / (2*y1), since a = 0 for secp256k1.
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))

	den := new(big.Int).Lsh(p.y, 1)
	den.ModInverse(den, fieldPrime)

	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, fieldPrime)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(p.x, 1))
	x3.Mod(x3, fieldPrime)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, fieldPrime)

	return newAffinePoint(x3, y3)
}

func (p *Point) clone() *Point {
	if p.isInfinity {
		return NewInfinityPoint()
	}
	return newAffinePoint(new(big.Int).Set(p.x), new(big.Int).Set(p.y))
}

// ScalarMult returns k*p using a fixed-iteration-count left-to-right
// double-and-add over all 256 bits of n, so the number of doublings does
// not depend on k's bit length. This is the structural half of a
// constant-time scalar multiplication; see DESIGN.md for what math/big
// cannot guarantee beyond it. Used for both secret-key-dependent signing
// multiplications and the public ScalarBaseMult path.
func (p *Point) ScalarMult(k *Scalar) *Point {
	acc := NewInfinityPoint()
	base := p.clone()
	kv := new(big.Int).Mod(k.v, groupOrder)
	for i := groupOrder.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		if kv.Bit(i) == 1 {
			acc = acc.Add(base)
		}
	}
	return acc
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *Scalar) *Point {
	return Generator().ScalarMult(k)
}

// Lincomb computes s*G + t*p, the linear combination the verifier uses
// to recover the candidate nonce commitment. All of its inputs are
// public during BIP-340 verification, so it MAY run in variable time;
// here it is a plain double-and-add that does not attempt to hide its
// timing.
func Lincomb(s *Scalar, t *Scalar, p *Point) *Point {
	return ScalarBaseMult(s).Add(p.ScalarMult(t))
}

// Decompact recovers the unique point with the given x-coordinate and an
// even y-coordinate, reporting false if x does not correspond to a point
// on the curve.
func Decompact(x *FieldElement) (*Point, bool) {
	xv := new(big.Int).Set(x.Normalize().v)

	rhs := new(big.Int).Mul(xv, xv)
	rhs.Mul(rhs, xv)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, fieldPrime)

	y, ok := fieldElementFromBigReduced(rhs).Sqrt()
	if !ok {
		return nil, false
	}
	if y.IsOdd() {
		y = y.Negate()
	}
	return newAffinePoint(xv, y.v), true
}
