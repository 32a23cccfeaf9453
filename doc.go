// Package bip340 implements Taproot Schnorr signatures over secp256k1 as
// specified by BIP-340: key generation, deterministic signing, and
// verification, with bit-exact agreement with the BIP-340 test vectors.
//
// The package signs and verifies 32-byte message digests; hashing the
// caller's actual message into that digest is the caller's responsibility.
// Keys and signatures are immutable value types and are safe for
// concurrent use.
package bip340
