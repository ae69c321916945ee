package notes

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintPrefix tags the hash algorithm so stored fingerprints stay
// comparable if it ever changes.
const FingerprintPrefix = "sha256:"

// Fingerprint identifies a normalized text. Two texts have the same
// fingerprint exactly when they are byte-for-byte equal.
func Fingerprint(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return FingerprintPrefix + hex.EncodeToString(sum[:])
}
