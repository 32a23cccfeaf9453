package bip340

import "errors"

// Sentinel errors returned by this package's parsing, signing, and
// verification operations. Callers should compare against these with
// errors.Is rather than matching on error strings.
var (
	// ErrMalformedInput is returned when a byte encoding of a key or
	// signature does not meet the wire format this package requires
	// (wrong length, or an encoded value outside its valid range).
	ErrMalformedInput = errors.New("bip340: malformed input")

	// ErrVerificationFailed is returned by Verify when a signature does
	// not match the given public key and message.
	ErrVerificationFailed = errors.New("bip340: signature verification failed")

	// ErrSigningUnavailable is returned by Sign in the astronomically
	// unlikely event that nonce derivation produces a zero nonce or a
	// zero signature scalar, or that the fresh signature fails its
	// self-verification, and by GenerateSigningKey when its random
	// source fails.
	ErrSigningUnavailable = errors.New("bip340: signing unavailable")
)
