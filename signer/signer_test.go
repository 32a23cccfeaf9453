package signer

import (
	"crypto/rand"
	"testing"
)

var (
	_ I = (*NativeSigner)(nil)
	_ I = (*BtcecSigner)(nil)
)

func TestNativeSignerSelfRoundTrip(t *testing.T) {
	s := NewNativeSigner()
	if err := s.Generate(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	digest := make([]byte, 32)
	if _, err := rand.Read(digest); err != nil {
		t.Fatal(err)
	}

	sig, err := s.Sign(digest)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	ok, err := s.Verify(digest, sig)
	if err != nil {
		t.Fatalf("verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("expected the signer to accept its own signature")
	}
}

func TestNativeSignerVerifiesBtcecSignature(t *testing.T) {
	native := NewNativeSigner()
	if err := native.Generate(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	btc := NewBtcecSigner()
	if err := btc.InitSec(native.Sec()); err != nil {
		t.Fatalf("btcec InitSec failed: %v", err)
	}

	digest := make([]byte, 32)
	if _, err := rand.Read(digest); err != nil {
		t.Fatal(err)
	}

	sig, err := btc.Sign(digest)
	if err != nil {
		t.Fatalf("btcec sign failed: %v", err)
	}

	ok, err := native.Verify(digest, sig)
	if err != nil {
		t.Fatalf("native verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("native verifier must accept a btcec-produced signature for the same key")
	}
}

func TestBtcecSignerVerifiesNativeSignature(t *testing.T) {
	native := NewNativeSigner()
	if err := native.Generate(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	btc := NewBtcecSigner()
	if err := btc.InitPub(native.Pub()); err != nil {
		t.Fatalf("btcec InitPub failed: %v", err)
	}

	digest := make([]byte, 32)
	if _, err := rand.Read(digest); err != nil {
		t.Fatal(err)
	}

	sig, err := native.Sign(digest)
	if err != nil {
		t.Fatalf("native sign failed: %v", err)
	}

	ok, err := btc.Verify(digest, sig)
	if err != nil {
		t.Fatalf("btcec verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("btcec verifier must accept a native-produced signature for the same key")
	}
}
