package stations_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"voicebank/internal/domain/stations"
)

func TestFingerprintMatchesSHA256(t *testing.T) {
	s2 := stations.NewS2Fingerprint()

	payload := []byte("RIFF....WAVE")
	sum := sha256.Sum256(payload)

	if got := s2.Run(payload); got != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected digest %s", got)
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	s2 := stations.NewS2Fingerprint()

	payload := []byte{0x01, 0x02, 0x03}
	if s2.Run(payload) != s2.Run(payload) {
		t.Fatal("same bytes produced different digests")
	}
}

func TestFingerprintSeparatesContent(t *testing.T) {
	s2 := stations.NewS2Fingerprint()

	if s2.Run([]byte("a")) == s2.Run([]byte("b")) {
		t.Fatal("distinct bytes produced the same digest")
	}
}
