// Package signer provides interchangeable implementations of a small
// sign/verify interface over 32-byte digests, so callers can swap this
// module's own BIP-340 implementation for an interop-tested one (or vice
// versa) without changing call sites.
package signer

// I is implemented by anything that can hold a BIP-340 key pair (or just
// a public key) and sign or verify 32-byte message digests with it.
type I interface {
	// Generate creates a fresh key pair from system entropy.
	Generate() error
	// InitSec loads a 32-byte secret key, deriving the public key.
	InitSec(sec []byte) error
	// InitPub loads a 32-byte X-only public key for verification only.
	InitPub(pub []byte) error
	// Sec returns the raw secret key bytes, or nil if none is held.
	Sec() []byte
	// Pub returns the raw X-only public key bytes, or nil if none is held.
	Pub() []byte
	// Sign produces a 64-byte signature over a 32-byte digest.
	Sign(digest []byte) ([]byte, error)
	// Verify reports whether sig is a valid signature over digest for
	// the held public key.
	Verify(digest, sig []byte) (bool, error)
	// Zero discards any held secret key, so that Sec returns nil and Sign
	// fails afterwards.
	Zero()
}
