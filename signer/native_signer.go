package signer

import (
	"crypto/rand"
	"errors"

	"bip340.dev"
)

// NativeSigner implements I directly on top of this module's own
// SigningKey/VerifyingKey/Sign/Verify. Sign draws fresh aux randomness
// from crypto/rand on every call.
type NativeSigner struct {
	sec *bip340.SigningKey
	pub *bip340.VerifyingKey
}

// NewNativeSigner returns an empty NativeSigner holding neither a secret
// nor a public key.
func NewNativeSigner() *NativeSigner {
	return &NativeSigner{}
}

func (s *NativeSigner) Generate() error {
	sec, err := bip340.GenerateSigningKey(rand.Reader)
	if err != nil {
		return err
	}
	s.sec = sec
	s.pub = sec.VerifyingKey()
	return nil
}

func (s *NativeSigner) InitSec(sec []byte) error {
	sk, err := bip340.SigningKeyFromBytes(sec)
	if err != nil {
		return err
	}
	s.sec = sk
	s.pub = sk.VerifyingKey()
	return nil
}

func (s *NativeSigner) InitPub(pub []byte) error {
	vk, err := bip340.VerifyingKeyFromBytes(pub)
	if err != nil {
		return err
	}
	s.sec = nil
	s.pub = vk
	return nil
}

func (s *NativeSigner) Sec() []byte {
	if s.sec == nil {
		return nil
	}
	b := s.sec.Bytes()
	return b[:]
}

func (s *NativeSigner) Pub() []byte {
	if s.pub == nil {
		return nil
	}
	b := s.pub.Bytes()
	return b[:]
}

func (s *NativeSigner) Sign(digest []byte) ([]byte, error) {
	if s.sec == nil {
		return nil, errors.New("signer: no secret key available for signing")
	}
	if len(digest) != 32 {
		return nil, errors.New("signer: digest must be 32 bytes")
	}
	var m, aux [32]byte
	copy(m[:], digest)
	if _, err := rand.Read(aux[:]); err != nil {
		return nil, err
	}
	sig, err := bip340.Sign(s.sec, m, aux)
	if err != nil {
		return nil, err
	}
	out := sig.Bytes()
	return out[:], nil
}

func (s *NativeSigner) Verify(digest, sig []byte) (bool, error) {
	if s.pub == nil {
		return false, errors.New("signer: no public key available for verification")
	}
	if len(digest) != 32 {
		return false, errors.New("signer: digest must be 32 bytes")
	}
	var m [32]byte
	copy(m[:], digest)

	parsed, err := bip340.SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	if err := bip340.Verify(s.pub, m, parsed); err != nil {
		return false, nil
	}
	return true, nil
}

// Zero drops the held SigningKey; the memory of its secret scalar is not
// overwritten. The public key stays loaded.
func (s *NativeSigner) Zero() {
	s.sec = nil
}
