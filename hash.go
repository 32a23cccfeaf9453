package bip340

import (
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// taggedHashPrefix holds the precomputed SHA(tag)||SHA(tag) prefix for a
// tag, so repeated TaggedHash calls for the same tag (which, in signing
// and verification, is always one of a handful of fixed strings) avoid
// recomputing it.
type taggedHashPrefix struct {
	once   sync.Once
	prefix [64]byte
}

func (t *taggedHashPrefix) get(tag string) [64]byte {
	t.once.Do(func() {
		h := sha256simd.Sum256([]byte(tag))
		copy(t.prefix[:32], h[:])
		copy(t.prefix[32:], h[:])
	})
	return t.prefix
}

var (
	auxTagPrefix       taggedHashPrefix
	nonceTagPrefix     taggedHashPrefix
	challengeTagPrefix taggedHashPrefix
)

const (
	tagAux       = "BIP0340/aux"
	tagNonce     = "BIP0340/nonce"
	tagChallenge = "BIP0340/challenge"
)

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data...), the
// domain-separated hash construction BIP-340 uses throughout. Known tags
// used internally by this package have their SHA256(tag)||SHA256(tag)
// prefix precomputed; arbitrary caller-supplied tags are hashed fresh
// each call.
func TaggedHash(tag string, data ...[]byte) [32]byte {
	prefix := taggedHashPrefixFor(tag)

	h := sha256simd.New()
	h.Write(prefix[:])
	for _, d := range data {
		h.Write(d)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func taggedHashPrefixFor(tag string) [64]byte {
	switch tag {
	case tagAux:
		return auxTagPrefix.get(tag)
	case tagNonce:
		return nonceTagPrefix.get(tag)
	case tagChallenge:
		return challengeTagPrefix.get(tag)
	default:
		h := sha256simd.Sum256([]byte(tag))
		var prefix [64]byte
		copy(prefix[:32], h[:])
		copy(prefix[32:], h[:])
		return prefix
	}
}
