package bip340_test

import (
	"testing"

	"bip340.dev"
)

func TestSignatureFromBytesRejectsWrongLength(t *testing.T) {
	if _, err := bip340.SignatureFromBytes(make([]byte, 63)); err == nil {
		t.Fatal("expected length rejection")
	}
}

func TestSignatureFromBytesRejectsRAtFieldPrime(t *testing.T) {
	sig := mustHex(t, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F69E89B4C5564D00349106B8497785DD7D1D713A8AE82B32FA79D5F7FC407D39B")
	if _, err := bip340.SignatureFromBytes(sig); err == nil {
		t.Fatal("expected rejection of r = p")
	}
}

func TestSignatureFromBytesRejectsSAtGroupOrder(t *testing.T) {
	sig := mustHex(t, "6CFF5C3BA86C69EA4B7376F31A9BCB4F74C1976089B2D9963DA2E5543E17776"+"9FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	if _, err := bip340.SignatureFromBytes(sig); err == nil {
		t.Fatal("expected rejection of s = n")
	}
}

func TestSignatureFromBytesRejectsZeroS(t *testing.T) {
	sig := make([]byte, bip340.SignatureSize)
	sig[0] = 1
	if _, err := bip340.SignatureFromBytes(sig); err == nil {
		t.Fatal("expected rejection of s = 0")
	}
}

func TestSignatureFromBytesRejectsZeroR(t *testing.T) {
	sig := make([]byte, bip340.SignatureSize)
	sig[bip340.FieldElementSize] = 1
	if _, err := bip340.SignatureFromBytes(sig); err == nil {
		t.Fatal("expected rejection of r = 0")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	original := mustHex(t, "E907831F80848D1069A5371B402410364BDF1C5F8307B0084C55F1CE2DCA821525F66A4A85EA8B71E482A74F382D2CE5EBEEE8FDB2172F477DF4900D310536C0")
	sig, err := bip340.SignatureFromBytes(original)
	if err != nil {
		t.Fatalf("unexpected parse failure: %v", err)
	}
	got := sig.Bytes()
	for i := range original {
		if got[i] != original[i] {
			t.Fatalf("round-trip mismatch at byte %d: got %x want %x", i, got, original)
		}
	}
}

func TestSignatureCompareOrdersByBytes(t *testing.T) {
	low := make([]byte, bip340.SignatureSize)
	low[0] = 1
	low[bip340.SignatureSize-1] = 1
	high := make([]byte, bip340.SignatureSize)
	high[0] = 2
	high[bip340.SignatureSize-1] = 1

	sigLow, err := bip340.SignatureFromBytes(low)
	if err != nil {
		t.Fatalf("unexpected parse failure: %v", err)
	}
	sigHigh, err := bip340.SignatureFromBytes(high)
	if err != nil {
		t.Fatalf("unexpected parse failure: %v", err)
	}

	if sigLow.Compare(sigHigh) >= 0 {
		t.Fatal("expected sigLow < sigHigh")
	}
	if sigHigh.Compare(sigLow) <= 0 {
		t.Fatal("expected sigHigh > sigLow")
	}
	if sigLow.Compare(sigLow) != 0 {
		t.Fatal("expected equal signatures to compare as 0")
	}
}
