// Package cryptox computes content digests for chart payloads.
package cryptox

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex encoded BLAKE2b-256 sum of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether data matches a digest produced by Digest.
func Verify(data []byte, digest string) bool {
	return Digest(data) == digest
}
