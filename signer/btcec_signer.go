package signer

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// BtcecSigner implements I using btcsuite's battle-tested btcec/schnorr
// stack instead of this module's own arithmetic, so callers can
// cross-check the two implementations against each other or depend on
// the interop-tested one directly.
type BtcecSigner struct {
	privKey   *btcec.PrivateKey
	pubKey    *btcec.PublicKey
	xonlyPub  []byte
	hasSecret bool
}

// NewBtcecSigner returns an empty BtcecSigner holding neither a secret
// nor a public key.
func NewBtcecSigner() *BtcecSigner {
	return &BtcecSigner{}
}

func (s *BtcecSigner) Generate() error {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return err
	}
	s.setKeyPair(privKey)
	return nil
}

func (s *BtcecSigner) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("signer: secret key must be 32 bytes")
	}
	privKey, _ := btcec.PrivKeyFromBytes(sec)
	s.setKeyPair(privKey)
	return nil
}

// setKeyPair stores privKey after normalizing it to the BIP-340 even-Y
// convention, the same negate-at-construction-time rule this module's
// own SigningKey applies.
func (s *BtcecSigner) setKeyPair(privKey *btcec.PrivateKey) {
	pubKey := privKey.PubKey()
	if pubKey.SerializeCompressed()[0] == secp256k1OddYPrefix {
		scalar := privKey.Key
		scalar.Negate()
		privKey = &btcec.PrivateKey{Key: scalar}
		pubKey = privKey.PubKey()
	}

	s.privKey = privKey
	s.pubKey = pubKey
	s.xonlyPub = schnorr.SerializePubKey(pubKey)
	s.hasSecret = true
}

const secp256k1OddYPrefix = 0x03

func (s *BtcecSigner) InitPub(pub []byte) error {
	if len(pub) != 32 {
		return errors.New("signer: public key must be 32 bytes")
	}
	pubKey, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return err
	}
	s.pubKey = pubKey
	s.xonlyPub = pub
	s.privKey = nil
	s.hasSecret = false
	return nil
}

func (s *BtcecSigner) Sec() []byte {
	if !s.hasSecret || s.privKey == nil {
		return nil
	}
	return s.privKey.Serialize()
}

func (s *BtcecSigner) Pub() []byte {
	return s.xonlyPub
}

func (s *BtcecSigner) Sign(digest []byte) ([]byte, error) {
	if !s.hasSecret || s.privKey == nil {
		return nil, errors.New("signer: no secret key available for signing")
	}
	if len(digest) != 32 {
		return nil, errors.New("signer: digest must be 32 bytes")
	}
	sig, err := schnorr.Sign(s.privKey, digest)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

func (s *BtcecSigner) Verify(digest, sig []byte) (bool, error) {
	if s.pubKey == nil {
		return false, errors.New("signer: no public key available for verification")
	}
	if len(digest) != 32 {
		return false, errors.New("signer: digest must be 32 bytes")
	}
	if len(sig) != 64 {
		return false, errors.New("signer: signature must be 64 bytes")
	}
	signature, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, err
	}
	return signature.Verify(digest, s.pubKey), nil
}

func (s *BtcecSigner) Zero() {
	if s.privKey != nil {
		s.privKey.Zero()
		s.privKey = nil
	}
	s.hasSecret = false
	s.pubKey = nil
	s.xonlyPub = nil
}
