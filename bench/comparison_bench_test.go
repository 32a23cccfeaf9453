// Package bench benchmarks this module's own sign/verify path against
// the btcec-backed adapter, to track how much headroom the math/big
// arithmetic backend leaves on the table.
package bench

import (
	"crypto/rand"
	"testing"

	"bip340.dev/signer"
)

var (
	benchSeckey  []byte
	benchMsghash []byte
)

func initBenchData() {
	if benchSeckey != nil {
		return
	}
	benchSeckey = make([]byte, 32)
	for {
		if _, err := rand.Read(benchSeckey); err != nil {
			panic(err)
		}
		s := signer.NewNativeSigner()
		if err := s.InitSec(benchSeckey); err == nil {
			break
		}
	}
	benchMsghash = make([]byte, 32)
	if _, err := rand.Read(benchMsghash); err != nil {
		panic(err)
	}
}

func BenchmarkNativeSign(b *testing.B) {
	initBenchData()
	s := signer.NewNativeSigner()
	if err := s.InitSec(benchSeckey); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sign(benchMsghash); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNativeVerify(b *testing.B) {
	initBenchData()
	s := signer.NewNativeSigner()
	if err := s.InitSec(benchSeckey); err != nil {
		b.Fatal(err)
	}
	sig, err := s.Sign(benchMsghash)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := s.Verify(benchMsghash, sig); err != nil || !ok {
			b.Fatal("unexpected verification failure")
		}
	}
}

func BenchmarkBtcecSign(b *testing.B) {
	initBenchData()
	s := signer.NewBtcecSigner()
	if err := s.InitSec(benchSeckey); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sign(benchMsghash); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBtcecVerify(b *testing.B) {
	initBenchData()
	s := signer.NewBtcecSigner()
	if err := s.InitSec(benchSeckey); err != nil {
		b.Fatal(err)
	}
	sig, err := s.Sign(benchMsghash)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := s.Verify(benchMsghash, sig); err != nil || !ok {
			b.Fatal("unexpected verification failure")
		}
	}
}
