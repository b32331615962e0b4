package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const fingerprintSize = 8

// Fingerprinter hashes sensitive identifiers so they can be logged and
// correlated without being exposed.
type Fingerprinter struct {
	key []byte
}

func NewFingerprinter(key string) *Fingerprinter {
	k := []byte(key)
	if len(k) > blake2b.Size {
		k = k[:blake2b.Size]
	}
	return &Fingerprinter{key: k}
}

func (f *Fingerprinter) Fingerprint(value string) string {
	if value == "" {
		return ""
	}
	h, err := blake2b.New(fingerprintSize, f.key)
	if err != nil {
		return ""
	}
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
