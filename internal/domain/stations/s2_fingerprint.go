package stations

import (
	"crypto/sha256"
	"encoding/hex"
)

// S2Fingerprint digests the canonical encoded bytes. The hex digest is the
// sole deduplication key.
type S2Fingerprint struct{}

func NewS2Fingerprint() *S2Fingerprint { return &S2Fingerprint{} }

func (s *S2Fingerprint) Run(encoded []byte) string {
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}
